package curriculum

import "github.com/abhisek/factdrill/internal/factgen"

func seedCurricula() []Curriculum {
	return []Curriculum{
		{Key: KeyAddition, Name: DisplayName(KeyAddition), Units: additionUnits()},
		{Key: KeySubtraction, Name: DisplayName(KeySubtraction), Units: subtractionUnits()},
	}
}

func additionUnits() []Unit {
	return []Unit{
		{
			ID:          "add-1",
			Title:       "Unit 1 - Adding One and Two",
			Focus:       "Make +1/+2 jumps automatic.",
			Description: "Build fact power with every number that adds one or two. The scoreboard celebrates quick counting.",
			Build:       func() []factgen.Fact { return factgen.FixedAddendSweep([]int{1, 2}, 0, 10, false) },
		},
		{
			ID:          "add-2",
			Title:       "Unit 2 - Pairs That Make Ten",
			Focus:       "Find every friend of ten.",
			Description: "Practice the classic ten-frame partners so students instantly know what completes ten.",
			Build:       factgen.PairsMakingTen,
		},
		{
			ID:          "add-3",
			Title:       "Unit 3 - Sums Less Than Ten",
			Focus:       "Keep totals under ten.",
			Description: "Mix-and-match addends that always stay below ten to reinforce flexible counting strategies.",
			Build:       func() []factgen.Fact { return factgen.SumsBelow(10, false) },
		},
		{
			ID:          "add-4",
			Title:       "Unit 4 - Adding Nine",
			Focus:       "Use make ten minus one.",
			Description: "Add nine by imagining a ten and removing one. Every fact here follows that rhythm.",
			Build:       func() []factgen.Fact { return factgen.FixedAddendSweep([]int{9}, 0, 10, false) },
		},
		{
			ID:          "add-5",
			Title:       "Unit 5 - Adding Eight",
			Focus:       "Use make ten minus two.",
			Description: "A cozy repeat of unit four, now with eights so learners solidify another near-ten strategy.",
			Build:       func() []factgen.Fact { return factgen.FixedAddendSweep([]int{8}, 0, 10, false) },
		},
		{
			ID:          "add-6",
			Title:       "Unit 6 - Look at the Leftovers",
			Focus:       "Bridge through ten and beyond.",
			Description: "These sums hop past ten. Learners split off leftovers to hit the next ten before finishing.",
			Build:       factgen.BridgeThroughTen,
		},
	}
}

func subtractionUnits() []Unit {
	return []Unit{
		{
			ID:          "sub-1",
			Title:       "Unit 1 - Subtracting One and Two",
			Focus:       "Count back one or two.",
			Description: "Automatic take-away of one or two keeps counting nimble. Every number from 2-12 appears.",
			Build:       func() []factgen.Fact { return factgen.FixedSubtrahendSweep([]int{1, 2}, 2, 12) },
		},
		{
			ID:          "sub-2",
			Title:       "Unit 2 - Subtracting Three and Four",
			Focus:       "Hop back three or four.",
			Description: "Build confident hops of three and four while results remain friendly and non-negative.",
			Build:       func() []factgen.Fact { return factgen.FixedSubtrahendSweep([]int{3, 4}, 3, 14) },
		},
		{
			ID:          "sub-3",
			Title:       "Unit 3 - Subtracting Neighbor Numbers",
			Focus:       "Compare near twins.",
			Description: "When numbers sit beside each other, subtraction just means checking for one or two leftovers.",
			Build:       factgen.NeighborSubtraction,
		},
		{
			ID:          "sub-4",
			Title:       "Unit 4 - Subtracting Five, Six, and Seven",
			Focus:       "Work with mid-sized hops.",
			Description: "Take away five, six, and seven to emphasize decomposing numbers before counting back.",
			Build:       func() []factgen.Fact { return factgen.FixedSubtrahendSweep([]int{5, 6, 7}, 6, 18) },
		},
		{
			ID:          "sub-5",
			Title:       "Unit 5 - Subtracting Nine",
			Focus:       "Drop nine using make-ten.",
			Description: "Mirror the adding nine strategy in reverse. Jump to ten and see what remains.",
			Build:       func() []factgen.Fact { return factgen.FixedSubtrahendSweep([]int{9}, 9, 18) },
		},
		{
			ID:          "sub-6",
			Title:       "Unit 6 - Subtracting Eight",
			Focus:       "Drop eight smoothly.",
			Description: "Continue the near-ten story: subtract eight from every number with answers that stay positive.",
			Build:       func() []factgen.Fact { return factgen.FixedSubtrahendSweep([]int{8}, 8, 18) },
		},
		{
			ID:          "sub-7",
			Title:       "Unit 7 - Subtracting 3-5 From >10",
			Focus:       "Work inside the teens.",
			Description: "Focus on teen numbers taking away three, four, or five to highlight regrouping ideas.",
			Build:       func() []factgen.Fact { return factgen.TeenSubtractionSweep([]int{3, 4, 5}, 11, 18) },
		},
		{
			ID:          "sub-8",
			Title:       "Unit 8 - Subtracting 6 & 7 From >10",
			Focus:       "Bigger jumps in the teens.",
			Description: "Finish with sixes and sevens taken away from numbers greater than ten to cement fluency.",
			Build:       func() []factgen.Fact { return factgen.TeenSubtractionSweep([]int{6, 7}, 12, 20) },
		},
	}
}
