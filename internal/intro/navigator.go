package intro

// DefaultTarget is the route the intro navigates to when none is configured.
const DefaultTarget = "home"

// Navigator performs the one navigation that ends the intro.
type Navigator interface {
	Navigate(target string)
}

// NavigatorFunc adapts a plain function to the Navigator interface.
type NavigatorFunc func(target string)

// Navigate calls f(target).
func (f NavigatorFunc) Navigate(target string) {
	f(target)
}

type discardNavigator struct{}

func (discardNavigator) Navigate(string) {}
