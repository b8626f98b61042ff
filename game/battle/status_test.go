package battle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeduel/server/game/dex"
)

func testCreature(name string, types ...dex.TypeID) *BattlePokemon {
	if len(types) == 0 {
		types = []dex.TypeID{dex.TypeNormal}
	}
	return &BattlePokemon{
		Name:      name,
		Level:     50,
		Types:     types,
		MaxHP:     160,
		CurrentHP: 160,
		Stats:     StatBlock{HP: 160, Attack: 100, Defense: 100, SpAttack: 100, SpDefense: 100, Speed: 100},
		Moves:     []Moveslot{{Name: "Tackle", PP: 35, MaxPP: 35}},
	}
}

func testSession(challenger, opponent *BattlePokemon) *Session {
	return &Session{
		ID:           "test-session",
		ChallengerID: 1,
		OpponentID:   2,
		Count:        1,
		Status:       StatusActive,
		Challengers:  []*BattlePokemon{challenger},
		Opponents:    []*BattlePokemon{opponent},
	}
}

func logContains(s *Session, substr string) bool {
	for _, e := range s.Log {
		if strings.Contains(e.Text, substr) {
			return true
		}
	}
	return false
}

func TestProcessTurnStart_FaintedIsFullySkipped(t *testing.T) {
	p := testCreature("Fainty")
	p.CurrentHP = 0
	p.Status = dex.StatusPoisoned
	s := testSession(p, testCreature("Foe"))

	skip := processTurnStart(testRNG(1), s, SideChallenger)

	assert.False(t, skip)
	assert.Empty(t, s.Log)
	assert.Equal(t, 0, p.CurrentHP)
}

func TestProcessTurnStart_PoisonChip(t *testing.T) {
	p := testCreature("Venom")
	p.Status = dex.StatusPoisoned
	s := testSession(p, testCreature("Foe"))

	processTurnStart(testRNG(1), s, SideChallenger)

	assert.Equal(t, 160-160/8, p.CurrentHP)
	assert.True(t, logContains(s, "hurt by poison"))
}

func TestProcessTurnStart_ToxicEscalates(t *testing.T) {
	p := testCreature("Toxed")
	p.Status = dex.StatusBadlyPoisoned
	s := testSession(p, testCreature("Foe"))
	rng := testRNG(1)

	processTurnStart(rng, s, SideChallenger)
	afterFirst := p.CurrentHP
	assert.Equal(t, 160-1*160/16, afterFirst)

	processTurnStart(rng, s, SideChallenger)
	assert.Equal(t, afterFirst-2*160/16, p.CurrentHP)
	assert.Equal(t, 3, p.StatusCounter)
}

func TestProcessTurnStart_SleepWakesAfterTwoSkippedTurns(t *testing.T) {
	p := testCreature("Dozer")
	p.Status = dex.StatusAsleep
	p.SleepCounter = 2
	s := testSession(p, testCreature("Foe"))
	rng := testRNG(1)

	assert.True(t, processTurnStart(rng, s, SideChallenger))
	assert.True(t, processTurnStart(rng, s, SideChallenger))

	// Third turn: wakes and acts the same turn.
	assert.False(t, processTurnStart(rng, s, SideChallenger))
	assert.Equal(t, dex.StatusNone, p.Status)
	assert.True(t, logContains(s, "woke up"))
}

func TestProcessTurnStart_ParalysisSkipRate(t *testing.T) {
	rng := testRNG(9)
	skips := 0
	for i := 0; i < 1000; i++ {
		p := testCreature("Sparky")
		p.Status = dex.StatusParalyzed
		s := testSession(p, testCreature("Foe"))
		if processTurnStart(rng, s, SideChallenger) {
			skips++
		}
	}
	assert.InDelta(t, 250, skips, 60)
}

func TestProcessTurnStart_ConfusionSnapsOut(t *testing.T) {
	p := testCreature("Dizzy")
	p.Status = dex.StatusConfused
	p.ConfusionCounter = 1
	s := testSession(p, testCreature("Foe"))

	skip := processTurnStart(testRNG(1), s, SideChallenger)

	assert.False(t, skip)
	assert.Equal(t, dex.StatusNone, p.Status)
	assert.True(t, logContains(s, "snapped out"))
}

func TestProcessTurnStart_LeechSeedDrainsAndHeals(t *testing.T) {
	seeded := testCreature("Host")
	seeder := testCreature("Seeder", dex.TypeGrass)
	seeder.CurrentHP = 100
	seeded.LeechSeededBy = "Seeder"
	s := testSession(seeded, seeder)

	processTurnStart(testRNG(1), s, SideChallenger)

	drain := 160 / 8
	assert.Equal(t, 160-drain, seeded.CurrentHP)
	assert.Equal(t, 100+drain, seeder.CurrentHP)
	assert.True(t, logContains(s, "sapped by Leech Seed"))
}

func TestProcessTurnStart_DrowsyBecomesSleep(t *testing.T) {
	p := testCreature("Yawner")
	p.DrowsyTurns = 1
	s := testSession(p, testCreature("Foe"))

	processTurnStart(testRNG(1), s, SideChallenger)

	assert.Equal(t, dex.StatusAsleep, p.Status)
	assert.Equal(t, 2, p.SleepCounter)
}

func TestProcessTurnStart_DrowsyOnsetBlockedBySafeguard(t *testing.T) {
	p := testCreature("Yawner")
	p.DrowsyTurns = 1
	s := testSession(p, testCreature("Foe"))
	s.ChallengerSide.SetEffect(dex.FieldSafeguard, 3)

	skip := processTurnStart(testRNG(1), s, SideChallenger)

	assert.False(t, skip)
	assert.Equal(t, dex.StatusNone, p.Status)
	assert.Zero(t, p.DrowsyTurns)
	assert.True(t, logContains(s, "Safeguard"))
}

func TestProcessTurnStart_WishHealsOnDelay(t *testing.T) {
	p := testCreature("Wisher")
	p.CurrentHP = 60
	p.WishTurns = 1
	p.WishAmount = 80
	s := testSession(p, testCreature("Foe"))

	processTurnStart(testRNG(1), s, SideChallenger)

	assert.Equal(t, 140, p.CurrentHP)
	assert.True(t, logContains(s, "wish came true"))
}

func TestProcessTurnStart_RestrictionsExpire(t *testing.T) {
	p := testCreature("Bound")
	p.TauntTurns = 1
	p.EncoreTurns = 1
	p.EncoreMove = "Tackle"
	s := testSession(p, testCreature("Foe"))

	processTurnStart(testRNG(1), s, SideChallenger)

	assert.Zero(t, p.TauntTurns)
	assert.Zero(t, p.EncoreTurns)
	assert.Empty(t, p.EncoreMove)
	assert.True(t, logContains(s, "taunt wore off"))
	assert.True(t, logContains(s, "encore ended"))
}

func TestProcessField_SandstormRespectsImmunity(t *testing.T) {
	soft := testCreature("Softy", dex.TypeWater)
	rock := testCreature("Rocky", dex.TypeRock)
	s := testSession(soft, rock)
	s.Field.Weather = dex.WeatherSandstorm
	s.Field.WeatherTurns = 3

	processField(s)

	assert.Equal(t, 160-160/16, soft.CurrentHP)
	assert.Equal(t, 160, rock.CurrentHP)
	assert.Equal(t, 2, s.Field.WeatherTurns)
}

func TestProcessField_WeatherExpires(t *testing.T) {
	s := testSession(testCreature("A", dex.TypeRock), testCreature("B", dex.TypeRock))
	s.Field.Weather = dex.WeatherSandstorm
	s.Field.WeatherTurns = 1

	processField(s)

	assert.Equal(t, dex.WeatherNone, s.Field.Weather)
	assert.True(t, logContains(s, "subsided"))
}

func TestProcessField_GrassyTerrainHealsGrounded(t *testing.T) {
	grounded := testCreature("Walker")
	grounded.CurrentHP = 100
	flyer := testCreature("Flyer", dex.TypeFlying)
	flyer.CurrentHP = 100
	s := testSession(grounded, flyer)
	s.Field.Terrain = dex.TerrainGrassy
	s.Field.TerrainTurns = 3

	processField(s)

	assert.Equal(t, 100+160/16, grounded.CurrentHP)
	assert.Equal(t, 100, flyer.CurrentHP)
}

func TestProcessField_SideEffectsTickDown(t *testing.T) {
	s := testSession(testCreature("A"), testCreature("B"))
	s.ChallengerSide.SetEffect(dex.FieldReflect, 1)
	s.OpponentSide.SetEffect(dex.FieldLightScreen, 2)

	processField(s)

	assert.False(t, s.ChallengerSide.HasEffect(dex.FieldReflect))
	assert.True(t, s.OpponentSide.HasEffect(dex.FieldLightScreen))
	require.Equal(t, 1, s.OpponentSide.Effects[dex.FieldLightScreen])
}
