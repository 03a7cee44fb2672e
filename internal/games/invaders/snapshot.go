package invaders

// Snapshot captures the game state for determinism testing and replay checks.
type Snapshot struct {
	Tick            uint64
	State           State
	PlayerX         int
	PlayerY         int
	PlayerAlive     bool
	FleetSpeed      int
	ActionThreshold int
	ActionPoints    int
	DeadInvaders    int
	AliveInvaders   int
	TotalInvaders   int
	PlayerBullet    bool
	InvaderBullets  int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:            g.tick,
		State:           g.state,
		PlayerX:         g.player.x,
		PlayerY:         g.player.y,
		PlayerAlive:     g.player.alive,
		FleetSpeed:      g.fleet.speed,
		ActionThreshold: g.fleet.actionThreshold,
		ActionPoints:    g.fleet.actionPoints,
		DeadInvaders:    g.fleet.deadInvaders,
		AliveInvaders:   g.fleet.Alive(),
		TotalInvaders:   g.fleet.Len(),
		PlayerBullet:    g.player.bullet.Active(),
		InvaderBullets:  g.fleet.ActiveBullets(),
	}
}
