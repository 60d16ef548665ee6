package sim

// firstPowerUpHit scans the power-up pool in slot order and returns the
// index of the first active power-up whose outset box overlaps the player
// box, or -1. At most one hit per pool per tick: first found wins, not
// nearest, which keeps the scan O(pool size) and deterministic for a
// given pool layout.
func firstPowerUpHit(playerBox Box, pool *Pool[PowerUp], outset float64) int {
	hit := -1
	pool.ForEachActive(func(i int, p *PowerUp) {
		if hit >= 0 {
			return
		}
		if playerBox.Intersects(p.box.Outset(outset)) {
			hit = i
		}
	})
	return hit
}

// firstObstacleHit scans the obstacle pool in slot order and returns the
// index of the first active obstacle overlapping the player box, or -1.
func firstObstacleHit(playerBox Box, pool *Pool[Obstacle]) int {
	hit := -1
	pool.ForEachActive(func(i int, o *Obstacle) {
		if hit >= 0 {
			return
		}
		if playerBox.Intersects(o.box) {
			hit = i
		}
	})
	return hit
}
