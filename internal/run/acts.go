package run

// Act boundary floors. Each act ends with its boss on the boundary floor.
// These values are part of the external contract shared with the reference
// data and must not drift.
const (
	Act1BossFloor = 16
	Act2BossFloor = 33
	Act3BossFloor = 52
)

// ActForFloor returns the act containing a floor. Floors past the act 3 boss
// belong to act 4.
func ActForFloor(floor int) int {
	switch {
	case floor <= Act1BossFloor:
		return 1
	case floor <= Act2BossFloor:
		return 2
	case floor <= Act3BossFloor:
		return 3
	default:
		return 4
	}
}

// BossFloorForAct returns the floor the act's boss is fought on. Act 4's boss
// sits a few floors past the act 3 boundary.
func BossFloorForAct(act int) int {
	switch act {
	case 1:
		return Act1BossFloor
	case 2:
		return Act2BossFloor
	case 3:
		return Act3BossFloor
	default:
		return Act3BossFloor + 4
	}
}

// FloorsUntilBoss returns the distance from a floor to its act boss floor.
func FloorsUntilBoss(floor int) int {
	boss := BossFloorForAct(ActForFloor(floor))
	if boss < floor {
		return 0
	}
	return boss - floor
}
