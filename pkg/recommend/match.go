package recommend

import "github.com/umputun/onepick/pkg/domain"

// tones that fit each mood, any overlap with item tags earns the tone bonus
var moodTones = map[domain.Mood]map[string]struct{}{
	domain.MoodLight:  set("cozy", "warm", "heartfelt", "funny", "romantic", "sweet", "comedy", "family"),
	domain.MoodHeavy:  set("dark", "tense", "thought-provoking", "emotional", "profound", "drama"),
	domain.MoodEscape: set("adventure", "mysterious", "fantastical", "thrilling", "epic", "fantasy", "sci-fi"),
}

// match bonuses
const (
	moodBonus      = 2.0
	paceBonus      = 2.0
	toneBonus      = 0.5
	intensityBonus = 0.3
)

// MatchScore rates how well the item fits the answers:
// +2 mood, +2 pace, +0.5 if any tag fits the mood tone, +0.3 if intensity fits the mood.
func MatchScore(item domain.Item, answers domain.Answers) float64 {
	var score float64
	if item.Mood != "" && item.Mood == answers.Mood {
		score += moodBonus
	}
	if item.Pace != "" && item.Pace == answers.Pace {
		score += paceBonus
	}
	if tones, ok := moodTones[answers.Mood]; ok {
		for _, tag := range item.Tags {
			if _, hit := tones[tag]; hit {
				score += toneBonus
				break
			}
		}
	}
	if intensityFits(item.Intensity, answers.Mood) {
		score += intensityBonus
	}
	return score
}

// WeightBonus sums user weights over item tags, each distinct tag counted once
func WeightBonus(weights domain.Weights, tags []string) float64 {
	if len(weights) == 0 {
		return 0
	}
	var res float64
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		res += weights[tag]
	}
	return res
}

func intensityFits(intensity int, mood domain.Mood) bool {
	if intensity <= 0 {
		return false
	}
	switch mood {
	case domain.MoodLight:
		return intensity <= 2
	case domain.MoodHeavy:
		return intensity >= 4
	case domain.MoodEscape:
		return intensity >= 2 && intensity <= 4
	}
	return false
}

func set(vals ...string) map[string]struct{} {
	res := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		res[v] = struct{}{}
	}
	return res
}
