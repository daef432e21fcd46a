package day

// Expected holds the known-correct answer for each part. A nil field means
// the answer is unknown.
type Expected struct {
	Part1 *string
	Part2 *string
}

// Unknown returns an Expected with no known answers.
func Unknown() Expected {
	return Expected{}
}

// Known returns an Expected with both answers set.
func Known(part1, part2 string) Expected {
	return Expected{Part1: &part1, Part2: &part2}
}

// KnownPart1 returns an Expected where only part 1 has been confirmed.
func KnownPart1(part1 string) Expected {
	return Expected{Part1: &part1}
}

// For returns the expected answer for p and whether one is set.
func (e Expected) For(p Part) (string, bool) {
	var v *string
	switch p {
	case Part1:
		v = e.Part1
	case Part2:
		v = e.Part2
	}
	if v == nil {
		return "", false
	}
	return *v, true
}
