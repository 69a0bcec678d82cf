package model

// Scope selects which side of a game the telemetry walk visits.
type Scope int

const (
	ScopeScouted Scope = iota
	ScopeOpponent
)

func (s Scope) String() string {
	switch s {
	case ScopeOpponent:
		return "opponent"
	default:
		return "scouted"
	}
}

// ---- Wire records (GRID central-data and series-state responses) ----

// Team is a central-data team node.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SeriesRecord is one series as listed by central data, plus its fetched
// series state. State is nil when the detail fetch failed or returned null;
// such a series contributes nothing to any analyzer.
type SeriesRecord struct {
	ID        string          `json:"id"`
	StartTime string          `json:"startTimeScheduled"`
	Title     *Title          `json:"title"`
	Teams     []SeriesTeamRef `json:"teams"`
	State     *SeriesState    `json:"seriesState"`
}

// Title identifies the game a series belongs to. NameShortened is the
// short-code used for filtering (e.g. "val").
type Title struct {
	Name          string `json:"name"`
	NameShortened string `json:"nameShortened"`
}

// SeriesTeamRef is the listing-level team reference on a series node.
type SeriesTeamRef struct {
	BaseInfo *TeamRef `json:"baseInfo"`
}

type TeamRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SeriesState is the completed-series telemetry root.
type SeriesState struct {
	Valid        bool              `json:"valid"`
	UpdatedAt    string            `json:"updatedAt"`
	Format       string            `json:"format"`
	Started      bool              `json:"started"`
	Finished     bool              `json:"finished"`
	Teams        []SeriesStateTeam `json:"teams"`
	DraftActions []DraftAction     `json:"draftActions"`
	Games        []Game            `json:"games"`
}

type SeriesStateTeam struct {
	Name string `json:"name"`
	Won  bool   `json:"won"`
}

// DraftAction is one ban or pick during map selection. Drafter may reference
// a broadcast/neutral entity rather than either competing team, or be absent
// entirely; such actions are skipped.
type DraftAction struct {
	SequenceNumber string     `json:"sequenceNumber"`
	Type           string     `json:"type"`
	Drafter        *Drafter   `json:"drafter"`
	Draftable      *Draftable `json:"draftable"`
}

type Drafter struct {
	ID string `json:"id"`
}

type Draftable struct {
	Name string `json:"name"`
}

// Game is one map played within a series.
type Game struct {
	SequenceNumber int        `json:"sequenceNumber"`
	Map            *GameMap   `json:"map"`
	Teams          []GameTeam `json:"teams"`
	Segments       []Segment  `json:"segments"`
}

type GameMap struct {
	Name string `json:"name"`
}

// GameTeam is a game-level roster. The display name is the only join key
// available at this granularity.
type GameTeam struct {
	Name    string       `json:"name"`
	Players []GamePlayer `json:"players"`
}

// GamePlayer carries game-cumulative stats. WeaponKills here are the
// authoritative per-game weapon tallies.
type GamePlayer struct {
	Name        string       `json:"name"`
	Character   *Character   `json:"character"`
	WeaponKills []WeaponKill `json:"weaponKills"`
}

type Character struct {
	Name string `json:"name"`
}

type WeaponKill struct {
	WeaponName string `json:"weaponName"`
	Count      int    `json:"count"`
}

// Segment is one round. SequenceNumber 1 marks the first round of a half
// (the pistol round). Side exists only at this granularity.
type Segment struct {
	SequenceNumber int           `json:"sequenceNumber"`
	Teams          []SegmentTeam `json:"teams"`
}

type SegmentTeam struct {
	Name    string          `json:"name"`
	Side    string          `json:"side"`
	Players []SegmentPlayer `json:"players"`
}

// SegmentPlayer carries round-scoped stats. DamageDealt, DamageTaken and
// Headshots are pointers because some providers omit them entirely; an
// absent value means "not recorded", which is different from zero and must
// not enter round-denominated averages.
type SegmentPlayer struct {
	Name                string       `json:"name"`
	Kills               int          `json:"kills"`
	Headshots           *int         `json:"headshots"`
	DamageDealt         *int         `json:"damageDealt"`
	DamageTaken         *int         `json:"damageTaken"`
	CurrentArmor        int          `json:"currentArmor"`
	KillAssistsGiven    int          `json:"killAssistsGiven"`
	KillAssistsReceived int          `json:"killAssistsReceived"`
	WeaponKills         []WeaponKill `json:"weaponKills"`
	Objectives          []Objective  `json:"objectives"`
}

// HasRoundTelemetry reports whether this row carries per-round stat fields.
// Rows without them still count toward rosters, but never toward
// round-denominated statistics.
func (p *SegmentPlayer) HasRoundTelemetry() bool {
	return p.DamageDealt != nil && p.Headshots != nil
}

type Objective struct {
	Type            string `json:"type"`
	CompletionCount int    `json:"completionCount"`
}

// Sides as reported on segment teams.
const (
	SideAttacker = "attacker"
	SideDefender = "defender"
)

// ObjectiveUltimateOrb is the objective type counted as an orb capture.
const ObjectiveUltimateOrb = "captureUltimateOrb"

// ---- Analyzer results ----

// WeaponCount is one weapon's kill tally for a player.
type WeaponCount struct {
	Weapon string
	Kills  int
}

// PlayerWeaponProfile is the weapon-preference result for one player.
type PlayerWeaponProfile struct {
	Player       string
	SeriesPlayed int

	TotalKills int
	Weapons    []WeaponCount // full tally, kills descending
	TopWeapons []WeaponCount // at most three

	AttackKills   int
	AttackRounds  int
	DefenseKills  int
	DefenseRounds int

	DamageDealt int
	DamageTaken int
	RoundsSeen  int // rounds carrying round telemetry

	Headshots       int
	AssistsGiven    int
	AssistsReceived int

	PistolRounds    int
	PistolArmorBuys int
	OrbCaptures     int
}

// PreferredWeapon returns the top weapon name, or "" when none.
func (p *PlayerWeaponProfile) PreferredWeapon() string {
	if len(p.TopWeapons) == 0 {
		return ""
	}
	return p.TopWeapons[0].Weapon
}

func (p *PlayerWeaponProfile) AttackKillsPerRound() float64 {
	if p.AttackRounds == 0 {
		return 0
	}
	return float64(p.AttackKills) / float64(p.AttackRounds)
}

func (p *PlayerWeaponProfile) DefenseKillsPerRound() float64 {
	if p.DefenseRounds == 0 {
		return 0
	}
	return float64(p.DefenseKills) / float64(p.DefenseRounds)
}

func (p *PlayerWeaponProfile) DamagePerRound() float64 {
	if p.RoundsSeen == 0 {
		return 0
	}
	return float64(p.DamageDealt) / float64(p.RoundsSeen)
}

func (p *PlayerWeaponProfile) DamageTakenPerRound() float64 {
	if p.RoundsSeen == 0 {
		return 0
	}
	return float64(p.DamageTaken) / float64(p.RoundsSeen)
}

// ArmorBuyRate is the percentage of pistol rounds where the player started
// with armor.
func (p *PlayerWeaponProfile) ArmorBuyRate() float64 {
	if p.PistolRounds == 0 {
		return 0
	}
	return float64(p.PistolArmorBuys) / float64(p.PistolRounds) * 100
}

// MapCount is one map's action tally.
type MapCount struct {
	Map   string
	Count int
}

// DraftSummary is the map-draft result for one team.
type DraftSummary struct {
	TotalActions int

	Bans  []MapCount // full frequency, count descending
	Picks []MapCount

	MostBanned  []MapCount // at most five
	MostPicked  []MapCount
	LeastBanned []MapCount // ascending, among maps banned at least once
}

// LeastFavoriteMap returns the most-banned map name, or "" when the team
// banned nothing in the window.
func (d *DraftSummary) LeastFavoriteMap() string {
	if len(d.Bans) == 0 {
		return ""
	}
	return d.Bans[0].Map
}

// CharacterCount is one character's usage tally.
type CharacterCount struct {
	Character string
	Count     int
}

// MapCharacterUsage lists which characters the scouted team fields on one map.
type MapCharacterUsage struct {
	Map        string
	Characters []CharacterCount // count descending
}

// CharacterThreat aggregates one opponent character's output across the batch.
type CharacterThreat struct {
	Character   string
	GamesPlayed int
	Rounds      int
	Kills       int
	Damage      int
}

func (t *CharacterThreat) AvgKillsPerGame() float64 {
	if t.GamesPlayed == 0 {
		return 0
	}
	return float64(t.Kills) / float64(t.GamesPlayed)
}

// AvgDamagePerRound divides by max(rounds, 1) so characters observed only in
// rosters still report a defined value.
func (t *CharacterThreat) AvgDamagePerRound() float64 {
	rounds := t.Rounds
	if rounds < 1 {
		rounds = 1
	}
	return float64(t.Damage) / float64(rounds)
}

// ScoutReport bundles the four analyzer results for one (team, window) run.
// It holds no references back into the input batch and is safe to cache,
// render, or serialize independently.
type ScoutReport struct {
	Team      string
	TeamID    string
	Window    string // first day of the lookback, YYYY-MM-DD
	Days      int

	SeriesAnalyzed int
	SeriesSkipped  int
	Opponents      []string // distinct opponent names from series listings

	Weapons []PlayerWeaponProfile
	Draft   DraftSummary
	Maps    []MapCharacterUsage
	Threats []CharacterThreat
}
