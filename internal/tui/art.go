package tui

import "github.com/papapumpkin/warren/internal/layers"

// artEntry is the flat rabbit shown before activation.
var artEntry = []string{
	`  (\(\    `,
	`  ( -.-)  `,
	`  o_(")(")`,
}

// Actor poses, keyed by layers.Pose.
var (
	artRabbitNeutral = []string{
		`   /)/)   `,
		`  ( •.•)  `,
		`  /|  |\  `,
		`  c(")(") `,
	}
	artRabbitLooking = []string{
		`   /)/)   `,
		`  ( o.o)  `,
		`  /|  |-o `,
		`  c(")(") `,
	}
	artRabbitEntering = []string{
		`   \(\(   `,
		`  ( >.<)  `,
		`  \|  |/  `,
		`   (")(") `,
	}
)

// artWatchOffset locates the pocket watch in artRabbitLooking.
var artWatchOffset = [2]int{8, 2}

func artForPose(pose string) []string {
	switch pose {
	case layers.PoseLooking:
		return artRabbitLooking
	case layers.PoseEntering:
		return artRabbitEntering
	default:
		return artRabbitNeutral
	}
}
