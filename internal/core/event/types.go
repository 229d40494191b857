package event

// Gameplay events emitted by the world while entities act.

type CitizenSaved struct{}

// CitizenLost is emitted when a citizen dies or turns into a zombie.
type CitizenLost struct {
	Converted bool
}

type ZombieBorn struct {
	Smart bool
}

type ZombieKilled struct {
	Smart bool
}

type GoodiePicked struct {
	Kind string
}

type LandmineDetonated struct {
	X, Y int
}

type FlameThrown struct {
	Flames int
}

type PlayerDied struct {
	Level int
}

type LevelFinished struct {
	Level int
}
