package flappy

// StepResult reports what one tick did.
type StepResult struct {
	Scored int      // Pipes cleared this tick
	Pruned int      // Pipes removed after leaving the screen
	Ended  bool     // Whether this tick ended the session
	Cause  EndCause // Why, when Ended
}

// Step advances the session by one frame against the current play area:
//
//  1. the bird falls;
//  2. each pipe, oldest first, scrolls, is tested for collision (which ends
//     the session immediately and skips the remaining pipes), may score,
//     and is marked if it left the screen;
//  3. marked pipes are pruned after the scan;
//  4. the bird is checked against the ground and the top tolerance.
//
// Stepping an ended session does nothing.
func (s *Session) Step(area Area) StepResult {
	var res StepResult
	if !s.running {
		return res
	}

	s.ticks++
	s.bird.Advance()

	margin := s.cfg.Obstacles.CollisionMargin
	speed := s.cfg.Physics.ScrollSpeed
	stale := 0
	collided := false

	s.pipes.Each(func(p *Pipe) bool {
		p.Advance(speed)

		if p.Collides(s.bird, margin) {
			collided = true
			return false
		}

		if !p.Passed && p.ClearedBy(s.bird) {
			p.Passed = true
			s.score++
			res.Scored++
		}

		if p.Stale() {
			stale++
		}
		return true
	})

	if collided {
		return s.finish(res, CauseCollision)
	}

	if stale > 0 {
		res.Pruned = s.pipes.PruneStale()
	}

	switch {
	case s.bird.Y+s.bird.Height > area.H:
		return s.finish(res, CauseGround)
	case s.bird.Y < s.cfg.Physics.TopTolerance:
		return s.finish(res, CauseCeiling)
	}

	return res
}

func (s *Session) finish(res StepResult, cause EndCause) StepResult {
	res.Ended = s.end(cause)
	res.Cause = cause
	return res
}
