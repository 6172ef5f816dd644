package decision

// strengthKeywords groups the phrases that indicate a cost advantage.
// A strength statement containing any keyword of a group earns the bonus
// once per group; matching several groups stacks.
var strengthKeywords = map[string][]string{
	"재료": {"거래처", "직거래", "자재", "재료"},
	"인력": {"직영", "숙련", "인력", "노무"},
	"장비": {"자가", "장비", "보유"},
}

// weaknessKeywords flag statements that indicate execution risk.
var weaknessKeywords = []string{"미경험", "부족", "없음", "처음"}
