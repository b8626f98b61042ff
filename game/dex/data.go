package dex

// allMoves is the embedded move table. Every EffectKind has at least one
// carrier so the resolver's dispatch arms are all reachable in play.
var allMoves = []Move{
	// Plain damaging moves.
	{Name: "Tackle", Type: TypeNormal, Category: CategoryPhysical, Power: 40, Accuracy: 100, PP: 35},
	{Name: "Quick Attack", Type: TypeNormal, Category: CategoryPhysical, Power: 40, Accuracy: 100, PP: 30, Priority: 1},
	{Name: "Aqua Jet", Type: TypeWater, Category: CategoryPhysical, Power: 40, Accuracy: 100, PP: 20, Priority: 1},
	{Name: "Water Gun", Type: TypeWater, Category: CategorySpecial, Power: 40, Accuracy: 100, PP: 25},
	{Name: "Hydro Pump", Type: TypeWater, Category: CategorySpecial, Power: 110, Accuracy: 80, PP: 5},
	{Name: "Waterfall", Type: TypeWater, Category: CategoryPhysical, Power: 80, Accuracy: 100, PP: 15},
	{Name: "Vine Whip", Type: TypeGrass, Category: CategoryPhysical, Power: 45, Accuracy: 100, PP: 25},
	{Name: "Razor Leaf", Type: TypeGrass, Category: CategoryPhysical, Power: 55, Accuracy: 95, PP: 25},
	{Name: "Ice Beam", Type: TypeIce, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 10},
	{Name: "Blizzard", Type: TypeIce, Category: CategorySpecial, Power: 110, Accuracy: 70, PP: 5},
	{Name: "Psychic", Type: TypePsychic, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 10},
	{Name: "Shadow Ball", Type: TypeGhost, Category: CategorySpecial, Power: 80, Accuracy: 100, PP: 15},
	{Name: "X-Scissor", Type: TypeBug, Category: CategoryPhysical, Power: 80, Accuracy: 100, PP: 15},
	{Name: "Dragon Claw", Type: TypeDragon, Category: CategoryPhysical, Power: 80, Accuracy: 100, PP: 15},
	{Name: "Dark Pulse", Type: TypeDark, Category: CategorySpecial, Power: 80, Accuracy: 100, PP: 15},
	{Name: "Crunch", Type: TypeDark, Category: CategoryPhysical, Power: 80, Accuracy: 100, PP: 15},
	{Name: "Iron Tail", Type: TypeSteel, Category: CategoryPhysical, Power: 100, Accuracy: 75, PP: 15},
	{Name: "Flash Cannon", Type: TypeSteel, Category: CategorySpecial, Power: 80, Accuracy: 100, PP: 10},
	{Name: "Moonblast", Type: TypeFairy, Category: CategorySpecial, Power: 95, Accuracy: 100, PP: 15},
	{Name: "Play Rough", Type: TypeFairy, Category: CategoryPhysical, Power: 90, Accuracy: 90, PP: 10},
	{Name: "Brick Break", Type: TypeFighting, Category: CategoryPhysical, Power: 75, Accuracy: 100, PP: 15},
	{Name: "Stone Edge", Type: TypeRock, Category: CategoryPhysical, Power: 100, Accuracy: 80, PP: 5},

	// Damaging with secondary status.
	{Name: "Ember", Type: TypeFire, Category: CategorySpecial, Power: 40, Accuracy: 100, PP: 25,
		Effect: &Effect{Kind: EffectDamageStatus, Status: StatusBurned, Chance: 0.1}},
	{Name: "Flamethrower", Type: TypeFire, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 15,
		Effect: &Effect{Kind: EffectDamageStatus, Status: StatusBurned, Chance: 0.1}},
	{Name: "Fire Blast", Type: TypeFire, Category: CategorySpecial, Power: 110, Accuracy: 85, PP: 5,
		Effect: &Effect{Kind: EffectDamageStatus, Status: StatusBurned, Chance: 0.1}},
	{Name: "Thunderbolt", Type: TypeElectric, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 15,
		Effect: &Effect{Kind: EffectDamageStatus, Status: StatusParalyzed, Chance: 0.1}},
	{Name: "Sludge Bomb", Type: TypePoison, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 10,
		Effect: &Effect{Kind: EffectDamageStatus, Status: StatusPoisoned, Chance: 0.3}},
	{Name: "Body Slam", Type: TypeNormal, Category: CategoryPhysical, Power: 85, Accuracy: 100, PP: 15,
		Effect: &Effect{Kind: EffectDamageStatus, Status: StatusParalyzed, Chance: 0.3}},

	// Status infliction.
	{Name: "Thunder Wave", Type: TypeElectric, Category: CategoryStatus, Accuracy: 90, PP: 20,
		Effect: &Effect{Kind: EffectStatus, Status: StatusParalyzed}},
	{Name: "Poison Powder", Type: TypePoison, Category: CategoryStatus, Accuracy: 75, PP: 35,
		Effect: &Effect{Kind: EffectStatus, Status: StatusPoisoned}},
	{Name: "Toxic", Type: TypePoison, Category: CategoryStatus, Accuracy: 90, PP: 10,
		Effect: &Effect{Kind: EffectStatus, Status: StatusBadlyPoisoned}},
	{Name: "Will-O-Wisp", Type: TypeFire, Category: CategoryStatus, Accuracy: 85, PP: 15,
		Effect: &Effect{Kind: EffectStatus, Status: StatusBurned}},
	{Name: "Hypnosis", Type: TypePsychic, Category: CategoryStatus, Accuracy: 60, PP: 20,
		Effect: &Effect{Kind: EffectStatus, Status: StatusAsleep}},
	{Name: "Confuse Ray", Type: TypeGhost, Category: CategoryStatus, Accuracy: 100, PP: 10,
		Effect: &Effect{Kind: EffectStatus, Status: StatusConfused}},

	// Stat boosts.
	{Name: "Swords Dance", Type: TypeNormal, Category: CategoryStatus, PP: 20,
		Effect: &Effect{Kind: EffectBoost, Stat: StatAttack, Stages: 2, SelfTarget: true}},
	{Name: "Iron Defense", Type: TypeSteel, Category: CategoryStatus, PP: 15,
		Effect: &Effect{Kind: EffectBoost, Stat: StatDefense, Stages: 2, SelfTarget: true}},
	{Name: "Agility", Type: TypePsychic, Category: CategoryStatus, PP: 30,
		Effect: &Effect{Kind: EffectBoost, Stat: StatSpeed, Stages: 2, SelfTarget: true}},
	{Name: "Tail Whip", Type: TypeNormal, Category: CategoryStatus, Accuracy: 100, PP: 30,
		Effect: &Effect{Kind: EffectBoost, Stat: StatDefense, Stages: -1}},
	{Name: "Calm Mind", Type: TypePsychic, Category: CategoryStatus, PP: 20,
		Effect: &Effect{Kind: EffectMultiBoost, SelfTarget: true,
			Boosts: map[StatID]int{StatSpAttack: 1, StatSpDefense: 1}}},
	{Name: "Dragon Dance", Type: TypeDragon, Category: CategoryStatus, PP: 20,
		Effect: &Effect{Kind: EffectMultiBoost, SelfTarget: true,
			Boosts: map[StatID]int{StatAttack: 1, StatSpeed: 1}}},
	{Name: "Close Combat", Type: TypeFighting, Category: CategoryPhysical, Power: 120, Accuracy: 100, PP: 5,
		Effect: &Effect{Kind: EffectMultiBoost, SelfTarget: true,
			Boosts: map[StatID]int{StatDefense: -1, StatSpDefense: -1}}},

	// Sound moves.
	{Name: "Growl", Type: TypeNormal, Category: CategoryStatus, Accuracy: 100, PP: 40, Sound: true,
		Effect: &Effect{Kind: EffectSound, Stat: StatAttack, Stages: -1}},
	{Name: "Screech", Type: TypeNormal, Category: CategoryStatus, Accuracy: 85, PP: 40, Sound: true,
		Effect: &Effect{Kind: EffectSound, Stat: StatDefense, Stages: -2}},
	{Name: "Hyper Voice", Type: TypeNormal, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 10, Sound: true},

	// Healing and draining.
	{Name: "Recover", Type: TypeNormal, Category: CategoryStatus, PP: 10,
		Effect: &Effect{Kind: EffectHeal, Fraction: 2}},
	{Name: "Synthesis", Type: TypeGrass, Category: CategoryStatus, PP: 5,
		Effect: &Effect{Kind: EffectHeal, Fraction: 2}},
	{Name: "Giga Drain", Type: TypeGrass, Category: CategorySpecial, Power: 75, Accuracy: 100, PP: 10,
		Effect: &Effect{Kind: EffectDrain, Fraction: 2}},
	{Name: "Drain Punch", Type: TypeFighting, Category: CategoryPhysical, Power: 75, Accuracy: 100, PP: 10,
		Effect: &Effect{Kind: EffectDrain, Fraction: 2}},
	{Name: "Leech Seed", Type: TypeGrass, Category: CategoryStatus, Accuracy: 90, PP: 10,
		Effect: &Effect{Kind: EffectLeechSeed}},

	// Recoil.
	{Name: "Flare Blitz", Type: TypeFire, Category: CategoryPhysical, Power: 120, Accuracy: 100, PP: 15,
		Effect: &Effect{Kind: EffectRecoil, Fraction: 3}},
	{Name: "Brave Bird", Type: TypeFlying, Category: CategoryPhysical, Power: 120, Accuracy: 100, PP: 15,
		Effect: &Effect{Kind: EffectRecoil, Fraction: 3}},
	{Name: "Double-Edge", Type: TypeNormal, Category: CategoryPhysical, Power: 120, Accuracy: 100, PP: 15,
		Effect: &Effect{Kind: EffectRecoil, Fraction: 4}},

	// Hazards and hazard removal.
	{Name: "Stealth Rock", Type: TypeRock, Category: CategoryStatus, PP: 20,
		Effect: &Effect{Kind: EffectHazard, Hazard: HazardStealthRock}},
	{Name: "Spikes", Type: TypeGround, Category: CategoryStatus, PP: 20,
		Effect: &Effect{Kind: EffectHazard, Hazard: HazardSpikes}},
	{Name: "Toxic Spikes", Type: TypePoison, Category: CategoryStatus, PP: 20,
		Effect: &Effect{Kind: EffectHazard, Hazard: HazardToxicSpikes}},
	{Name: "Rapid Spin", Type: TypeNormal, Category: CategoryPhysical, Power: 50, Accuracy: 100, PP: 40,
		Effect: &Effect{Kind: EffectHazardClear}},
	{Name: "Defog", Type: TypeFlying, Category: CategoryStatus, PP: 15,
		Effect: &Effect{Kind: EffectHazardClear}},

	// Charge attacks.
	{Name: "Solar Beam", Type: TypeGrass, Category: CategorySpecial, Power: 120, Accuracy: 100, PP: 10,
		Effect: &Effect{Kind: EffectCharge, ChargeTurns: 1}},
	{Name: "Sky Attack", Type: TypeFlying, Category: CategoryPhysical, Power: 140, Accuracy: 90, PP: 5,
		Effect: &Effect{Kind: EffectCharge, ChargeTurns: 1}},

	// Weather and terrain.
	{Name: "Rain Dance", Type: TypeWater, Category: CategoryStatus, PP: 5,
		Effect: &Effect{Kind: EffectWeather, Weather: WeatherRain, Turns: 5}},
	{Name: "Sunny Day", Type: TypeFire, Category: CategoryStatus, PP: 5,
		Effect: &Effect{Kind: EffectWeather, Weather: WeatherSun, Turns: 5}},
	{Name: "Sandstorm", Type: TypeRock, Category: CategoryStatus, PP: 10,
		Effect: &Effect{Kind: EffectWeather, Weather: WeatherSandstorm, Turns: 5}},
	{Name: "Hail", Type: TypeIce, Category: CategoryStatus, PP: 10,
		Effect: &Effect{Kind: EffectWeather, Weather: WeatherHail, Turns: 5}},
	{Name: "Grassy Terrain", Type: TypeGrass, Category: CategoryStatus, PP: 10,
		Effect: &Effect{Kind: EffectTerrain, Terrain: TerrainGrassy, Turns: 5}},
	{Name: "Misty Terrain", Type: TypeFairy, Category: CategoryStatus, PP: 10,
		Effect: &Effect{Kind: EffectTerrain, Terrain: TerrainMisty, Turns: 5}},
	{Name: "Psychic Terrain", Type: TypePsychic, Category: CategoryStatus, PP: 10,
		Effect: &Effect{Kind: EffectTerrain, Terrain: TerrainPsychic, Turns: 5}},

	// Side and field effects.
	{Name: "Light Screen", Type: TypePsychic, Category: CategoryStatus, PP: 30,
		Effect: &Effect{Kind: EffectField, Field: FieldLightScreen, Turns: 5}},
	{Name: "Reflect", Type: TypePsychic, Category: CategoryStatus, PP: 20,
		Effect: &Effect{Kind: EffectField, Field: FieldReflect, Turns: 5}},
	{Name: "Aurora Veil", Type: TypeIce, Category: CategoryStatus, PP: 20,
		Effect: &Effect{Kind: EffectField, Field: FieldAuroraVeil, Turns: 5}},
	{Name: "Tailwind", Type: TypeFlying, Category: CategoryStatus, PP: 15,
		Effect: &Effect{Kind: EffectField, Field: FieldTailwind, Turns: 4}},
	{Name: "Trick Room", Type: TypePsychic, Category: CategoryStatus, PP: 5, Priority: -7,
		Effect: &Effect{Kind: EffectField, Field: FieldTrickRoom, Turns: 5}},
	{Name: "Safeguard", Type: TypeNormal, Category: CategoryStatus, PP: 25,
		Effect: &Effect{Kind: EffectPreventStatus, Field: FieldSafeguard, Turns: 5}},

	// Team cures.
	{Name: "Heal Bell", Type: TypeNormal, Category: CategoryStatus, PP: 5, Sound: true,
		Effect: &Effect{Kind: EffectCureTeam}},
	{Name: "Aromatherapy", Type: TypeGrass, Category: CategoryStatus, PP: 5,
		Effect: &Effect{Kind: EffectCureTeam}},

	// Locking, disabling, taunting.
	{Name: "Outrage", Type: TypeDragon, Category: CategoryPhysical, Power: 120, Accuracy: 100, PP: 10,
		Effect: &Effect{Kind: EffectLock, Turns: 2}},
	{Name: "Disable", Type: TypeNormal, Category: CategoryStatus, Accuracy: 100, PP: 20,
		Effect: &Effect{Kind: EffectDisable, Turns: 4}},
	{Name: "Encore", Type: TypeNormal, Category: CategoryStatus, Accuracy: 100, PP: 5,
		Effect: &Effect{Kind: EffectEncore, Turns: 3}},
	{Name: "Taunt", Type: TypeDark, Category: CategoryStatus, Accuracy: 100, PP: 20,
		Effect: &Effect{Kind: EffectTaunt, Turns: 3}},

	// Multi-hit.
	{Name: "Double Kick", Type: TypeFighting, Category: CategoryPhysical, Power: 30, Accuracy: 100, PP: 30,
		Effect: &Effect{Kind: EffectMultiHit, MinHits: 2, MaxHits: 2}},
	{Name: "Bullet Seed", Type: TypeGrass, Category: CategoryPhysical, Power: 25, Accuracy: 100, PP: 30,
		Effect: &Effect{Kind: EffectMultiHit, MinHits: 2, MaxHits: 5}},
	{Name: "Rock Blast", Type: TypeRock, Category: CategoryPhysical, Power: 25, Accuracy: 90, PP: 10,
		Effect: &Effect{Kind: EffectMultiHit, MinHits: 2, MaxHits: 5}},

	// Boost clearing.
	{Name: "Haze", Type: TypeIce, Category: CategoryStatus, PP: 30,
		Effect: &Effect{Kind: EffectClearBoosts}},

	// Spread damage (single-target resolution; multi-target stubbed).
	{Name: "Earthquake", Type: TypeGround, Category: CategoryPhysical, Power: 100, Accuracy: 100, PP: 10,
		Effect: &Effect{Kind: EffectSpread}},
	{Name: "Surf", Type: TypeWater, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 15,
		Effect: &Effect{Kind: EffectSpread}},
	{Name: "Rock Slide", Type: TypeRock, Category: CategoryPhysical, Power: 75, Accuracy: 90, PP: 10,
		Effect: &Effect{Kind: EffectSpread}},

	// Self-fainting.
	{Name: "Explosion", Type: TypeNormal, Category: CategoryPhysical, Power: 250, Accuracy: 100, PP: 5,
		Effect: &Effect{Kind: EffectSelfFaint}},

	// Protection and counters.
	{Name: "Protect", Type: TypeNormal, Category: CategoryStatus, PP: 10, Priority: 4,
		Effect: &Effect{Kind: EffectProtect}},
	{Name: "Counter", Type: TypeFighting, Category: CategoryPhysical, PP: 20, Priority: -5,
		Effect: &Effect{Kind: EffectCounter}},
	{Name: "Mirror Coat", Type: TypePsychic, Category: CategorySpecial, PP: 20, Priority: -5,
		Effect: &Effect{Kind: EffectCounter}},

	// Partial trapping.
	{Name: "Fire Spin", Type: TypeFire, Category: CategorySpecial, Power: 35, Accuracy: 85, PP: 15,
		Effect: &Effect{Kind: EffectTrap, Turns: 4}},
	{Name: "Whirlpool", Type: TypeWater, Category: CategorySpecial, Power: 35, Accuracy: 85, PP: 15,
		Effect: &Effect{Kind: EffectTrap, Turns: 4}},
	{Name: "Wrap", Type: TypeNormal, Category: CategoryPhysical, Power: 15, Accuracy: 90, PP: 20,
		Effect: &Effect{Kind: EffectTrap, Turns: 4}},

	// Delayed effects.
	{Name: "Yawn", Type: TypeNormal, Category: CategoryStatus, PP: 10,
		Effect: &Effect{Kind: EffectYawn}},
	{Name: "Wish", Type: TypeNormal, Category: CategoryStatus, PP: 10,
		Effect: &Effect{Kind: EffectWish}},
	{Name: "Roost", Type: TypeFlying, Category: CategoryStatus, PP: 10,
		Effect: &Effect{Kind: EffectRoost}},

	// Pivot moves.
	{Name: "U-turn", Type: TypeBug, Category: CategoryPhysical, Power: 70, Accuracy: 100, PP: 20,
		Effect: &Effect{Kind: EffectPivot}},
	{Name: "Volt Switch", Type: TypeElectric, Category: CategorySpecial, Power: 70, Accuracy: 100, PP: 20,
		Effect: &Effect{Kind: EffectPivot}},
}

// allSpecies is the embedded species table. Abilities are picked so every
// hook in the battle package has a carrier.
var allSpecies = []Species{
	{
		ID: 3, Name: "Venusaur", Types: []TypeID{TypeGrass, TypePoison},
		Stats:   BaseStats{HP: 80, Attack: 82, Defense: 83, SpAttack: 100, SpDefense: 100, Speed: 80},
		Ability: AbilityChlorophyll,
		Learnset: []LearnsetEntry{
			{1, "Vine Whip"}, {1, "Growl"}, {9, "Leech Seed"}, {12, "Razor Leaf"},
			{15, "Poison Powder"}, {20, "Synthesis"}, {25, "Giga Drain"}, {30, "Sludge Bomb"},
			{35, "Grassy Terrain"}, {40, "Solar Beam"}, {45, "Sunny Day"},
		},
	},
	{
		ID: 76, Name: "Golem", Types: []TypeID{TypeRock, TypeGround},
		Stats:   BaseStats{HP: 80, Attack: 120, Defense: 130, SpAttack: 55, SpDefense: 65, Speed: 45},
		Ability: AbilitySturdy,
		Learnset: []LearnsetEntry{
			{1, "Tackle"}, {1, "Tail Whip"}, {10, "Rock Blast"}, {16, "Stealth Rock"},
			{22, "Iron Defense"}, {28, "Rock Slide"}, {34, "Earthquake"}, {40, "Stone Edge"},
			{44, "Explosion"}, {48, "Sandstorm"},
		},
	},
	{
		ID: 80, Name: "Slowbro", Types: []TypeID{TypeWater, TypePsychic},
		Stats:   BaseStats{HP: 95, Attack: 75, Defense: 110, SpAttack: 100, SpDefense: 80, Speed: 30},
		Ability: AbilityRegenerator,
		Learnset: []LearnsetEntry{
			{1, "Water Gun"}, {1, "Growl"}, {10, "Confuse Ray"}, {15, "Calm Mind"},
			{20, "Psychic"}, {25, "Light Screen"}, {30, "Surf"}, {36, "Trick Room"},
			{40, "Recover"}, {45, "Ice Beam"},
		},
	},
	{
		ID: 97, Name: "Hypno", Types: []TypeID{TypePsychic},
		Stats:   BaseStats{HP: 85, Attack: 73, Defense: 70, SpAttack: 73, SpDefense: 115, Speed: 67},
		Ability: AbilityInsomnia,
		Learnset: []LearnsetEntry{
			{1, "Tackle"}, {5, "Hypnosis"}, {10, "Disable"}, {15, "Confuse Ray"},
			{20, "Psychic"}, {25, "Reflect"}, {30, "Wish"}, {35, "Safeguard"},
			{40, "Shadow Ball"}, {45, "Psychic Terrain"},
		},
	},
	{
		ID: 106, Name: "Hitmonlee", Types: []TypeID{TypeFighting},
		Stats:   BaseStats{HP: 50, Attack: 120, Defense: 53, SpAttack: 35, SpDefense: 110, Speed: 87},
		Ability: AbilityLimber,
		Learnset: []LearnsetEntry{
			{1, "Double Kick"}, {1, "Tackle"}, {10, "Brick Break"}, {16, "Counter"},
			{22, "Close Combat"}, {28, "Taunt"}, {34, "Drain Punch"}, {40, "Stone Edge"},
			{44, "Encore"},
		},
	},
	{
		ID: 110, Name: "Weezing", Types: []TypeID{TypePoison},
		Stats:   BaseStats{HP: 65, Attack: 90, Defense: 120, SpAttack: 85, SpDefense: 70, Speed: 60},
		Ability: AbilityLevitate,
		Learnset: []LearnsetEntry{
			{1, "Tackle"}, {8, "Poison Powder"}, {12, "Toxic Spikes"}, {18, "Sludge Bomb"},
			{24, "Will-O-Wisp"}, {30, "Toxic"}, {36, "Explosion"}, {42, "Dark Pulse"},
			{46, "Misty Terrain"},
		},
	},
	{
		ID: 119, Name: "Seaking", Types: []TypeID{TypeWater},
		Stats:   BaseStats{HP: 80, Attack: 92, Defense: 65, SpAttack: 65, SpDefense: 80, Speed: 68},
		Ability: AbilityWaterVeil,
		Learnset: []LearnsetEntry{
			{1, "Water Gun"}, {1, "Tail Whip"}, {10, "Aqua Jet"}, {16, "Whirlpool"},
			{22, "Waterfall"}, {28, "Agility"}, {34, "Body Slam"}, {40, "Rain Dance"},
			{45, "Double-Edge"},
		},
	},
	{
		ID: 130, Name: "Gyarados", Types: []TypeID{TypeWater, TypeFlying},
		Stats:   BaseStats{HP: 95, Attack: 125, Defense: 79, SpAttack: 60, SpDefense: 100, Speed: 81},
		Ability: AbilityIntimidate,
		Learnset: []LearnsetEntry{
			{1, "Tackle"}, {10, "Crunch"}, {16, "Waterfall"}, {22, "Dragon Dance"},
			{28, "Taunt"}, {32, "Fire Spin"}, {36, "Hydro Pump"}, {42, "Rain Dance"},
			{46, "Hyper Voice"},
		},
	},
	{
		ID: 134, Name: "Vaporeon", Types: []TypeID{TypeWater},
		Stats:   BaseStats{HP: 130, Attack: 65, Defense: 60, SpAttack: 110, SpDefense: 95, Speed: 65},
		Ability: AbilityWaterAbsorb,
		Learnset: []LearnsetEntry{
			{1, "Tackle"}, {1, "Growl"}, {10, "Water Gun"}, {16, "Wish"},
			{22, "Ice Beam"}, {28, "Heal Bell"}, {34, "Surf"}, {40, "Haze"},
			{44, "Hydro Pump"},
		},
	},
	{
		ID: 149, Name: "Dragonite", Types: []TypeID{TypeDragon, TypeFlying},
		Stats:   BaseStats{HP: 91, Attack: 134, Defense: 95, SpAttack: 100, SpDefense: 100, Speed: 80},
		Ability: AbilityMultiscale,
		Learnset: []LearnsetEntry{
			{1, "Wrap"}, {10, "Dragon Claw"}, {16, "Dragon Dance"}, {22, "Roost"},
			{28, "Outrage"}, {34, "Brave Bird"}, {38, "Sky Attack"}, {42, "Thunderbolt"},
			{46, "Fire Blast"},
		},
	},
	{
		ID: 184, Name: "Azumarill", Types: []TypeID{TypeWater, TypeFairy},
		Stats:   BaseStats{HP: 100, Attack: 50, Defense: 80, SpAttack: 60, SpDefense: 80, Speed: 50},
		Ability: AbilityHugePower,
		Learnset: []LearnsetEntry{
			{1, "Tackle"}, {1, "Tail Whip"}, {10, "Aqua Jet"}, {16, "Play Rough"},
			{22, "Waterfall"}, {28, "Whirlpool"}, {34, "Double-Edge"}, {40, "Rain Dance"},
			{45, "Hydro Pump"},
		},
	},
	{
		ID: 230, Name: "Kingdra", Types: []TypeID{TypeWater, TypeDragon},
		Stats:   BaseStats{HP: 75, Attack: 95, Defense: 95, SpAttack: 95, SpDefense: 95, Speed: 85},
		Ability: AbilitySwiftSwim,
		Learnset: []LearnsetEntry{
			{1, "Water Gun"}, {10, "Dragon Claw"}, {16, "Agility"}, {22, "Ice Beam"},
			{28, "Rain Dance"}, {34, "Surf"}, {40, "Outrage"}, {45, "Hydro Pump"},
		},
	},
	{
		ID: 359, Name: "Absol", Types: []TypeID{TypeDark},
		Stats:   BaseStats{HP: 65, Attack: 130, Defense: 60, SpAttack: 75, SpDefense: 60, Speed: 75},
		Ability: AbilityPressure,
		Learnset: []LearnsetEntry{
			{1, "Quick Attack"}, {10, "Taunt"}, {16, "Crunch"}, {22, "Swords Dance"},
			{28, "X-Scissor"}, {34, "Dark Pulse"}, {40, "Play Rough"}, {45, "Stone Edge"},
		},
	},
	{
		ID: 445, Name: "Garchomp", Types: []TypeID{TypeDragon, TypeGround},
		Stats:   BaseStats{HP: 108, Attack: 130, Defense: 95, SpAttack: 80, SpDefense: 85, Speed: 102},
		Ability: AbilityRoughSkin,
		Learnset: []LearnsetEntry{
			{1, "Tackle"}, {10, "Dragon Claw"}, {16, "Spikes"}, {22, "Swords Dance"},
			{28, "Earthquake"}, {34, "Outrage"}, {40, "Stone Edge"}, {45, "Fire Blast"},
		},
	},
	{
		ID: 553, Name: "Krookodile", Types: []TypeID{TypeGround, TypeDark},
		Stats:   BaseStats{HP: 95, Attack: 117, Defense: 80, SpAttack: 65, SpDefense: 70, Speed: 92},
		Ability: AbilityMoxie,
		Learnset: []LearnsetEntry{
			{1, "Tackle"}, {10, "Crunch"}, {16, "Taunt"}, {22, "Swords Dance"},
			{28, "Earthquake"}, {34, "U-turn"}, {40, "Stone Edge"}, {45, "Outrage"},
		},
	},
}
