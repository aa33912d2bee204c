package rules

// Token type names used by the stock rule set.
const (
	TypeDiceRoll = "dice_roll"
	TypeDialogue = "dialogue"
	TypeAction   = "action"
	TypeOOC      = "ooc"
)

// DefaultRules returns the stock rule set for conventional tabletop-RPG
// logs: bracketed dice results, CJK corner-quoted and double-quoted
// dialogue, starred actions and double-parenthesised out-of-character
// chatter, plus the default keyword list for the literal matcher.
func DefaultRules() *RulesFile {
	return &RulesFile{
		Patterns: []PatternRule{
			{Pattern: `\[d(\d+)\s*=\s*(\d+)\]`, Type: TypeDiceRoll, Priority: 90, Fields: []string{"sides", "result"}},
			{Pattern: `「(.+?)」`, Type: TypeDialogue, Priority: 80, Fields: []string{"speech"}},
			{Pattern: `"([^"]+)"`, Type: TypeDialogue, Priority: 75, Fields: []string{"speech"}},
			{Pattern: `\*\*(.+?)\*\*`, Type: TypeAction, Priority: 70, Fields: []string{"move"}},
			{Pattern: `\(\((.+?)\)\)`, Type: TypeOOC, Priority: 60, Fields: []string{"comment"}},
		},
		Keywords: []string{"骰子", "投掷", "检定"},
	}
}
