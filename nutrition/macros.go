package nutrition

import (
	"fmt"
	"math"
	"strings"
)

// macroSplit keeps the unrounded intermediate values so the derivation line
// can show what each clamp did.
type macroSplit struct {
	proteinPerKG float64
	proteinG     float64
	proteinNote  string
	fatShare     float64
	styleRule    string
	fatG         float64
	carbsG       float64
}

// DistributeMacros splits a calorie target into protein, carbs and fat grams.
//
// Protein follows body weight but is clamped so its calories stay within
// 20-35% of the target. Fat takes a goal-specific share, optionally nudged by
// the local food style. Carbs take whatever is left and are only floored at
// 1 g, so an extreme target can leave the gram split short of the calories.
func DistributeMacros(calories int, weightKG float64, goal FitnessGoal, localFoodStyle string) Macros {
	return splitMacros(calories, weightKG, goal, localFoodStyle).rounded()
}

func splitMacros(calories int, weightKG float64, goal FitnessGoal, localFoodStyle string) macroSplit {
	var s macroSplit
	cal := float64(calories)

	s.proteinPerKG = defaultProteinPerKG
	if v, ok := proteinPerKG[goal]; ok {
		s.proteinPerKG = v
	}
	s.proteinG = weightKG * s.proteinPerKG
	switch minG, maxG := cal*minProteinShare/kcalPerGramProtein, cal*maxProteinShare/kcalPerGramProtein; {
	case s.proteinG < minG:
		s.proteinG = minG
		s.proteinNote = "raised to 20% of calories"
	case s.proteinG > maxG:
		s.proteinG = maxG
		s.proteinNote = "lowered to 35% of calories"
	}

	s.fatShare = defaultFatShare
	if v, ok := fatShare[goal]; ok {
		s.fatShare = v
	}
	s.fatShare, s.styleRule = applyFoodStyle(s.fatShare, localFoodStyle)
	s.fatG = cal * s.fatShare / kcalPerGramFat

	s.carbsG = max(1, (cal-s.proteinG*kcalPerGramProtein-s.fatG*kcalPerGramFat)/kcalPerGramCarbs)
	return s
}

// applyFoodStyle runs the food style rules against the free-text style and
// returns the adjusted fat share with the name of the rule that fired.
func applyFoodStyle(share float64, style string) (float64, string) {
	style = strings.ToLower(style)
	if strings.TrimSpace(style) == "" {
		return share, ""
	}
	for _, rule := range foodStyleRules {
		if !containsAny(style, rule.keywords) {
			continue
		}
		share += rule.delta
		if rule.delta < 0 {
			share = max(share, rule.limit)
		} else {
			share = min(share, rule.limit)
		}
		return share, rule.name
	}
	return share, ""
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func (s macroSplit) rounded() Macros {
	return Macros{
		ProteinG: roundGrams(s.proteinG),
		CarbsG:   roundGrams(s.carbsG),
		FatG:     roundGrams(s.fatG),
	}
}

func roundGrams(g float64) int {
	return max(1, int(math.Round(g)))
}

func (s macroSplit) describe(weightKG float64) string {
	m := s.rounded()
	protein := fmt.Sprintf("protein %.1f g/kg x %.1f kg", s.proteinPerKG, weightKG)
	if s.proteinNote != "" {
		protein += " " + s.proteinNote
	}
	fat := fmt.Sprintf("fat %.0f%% of calories", s.fatShare*100)
	if s.styleRule != "" {
		fat += fmt.Sprintf(" (%s style)", s.styleRule)
	}
	return fmt.Sprintf("Macros: %s = %d g; %s = %d g; carbs remainder = %d g",
		protein, m.ProteinG, fat, m.FatG, m.CarbsG)
}
