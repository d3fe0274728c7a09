package calculation

// BuildSchedule returns periods entries of amount, compounded by
// (1 + growth) once every frequency periods. The amount is flat within a
// year.
func BuildSchedule(amount, growth float64, periods, frequency int) []float64 {
	if periods <= 0 {
		return []float64{}
	}
	if frequency < 1 {
		frequency = 1
	}
	schedule := make([]float64, periods)
	current := amount
	for t := 0; t < periods; t++ {
		schedule[t] = current
		if (t+1)%frequency == 0 {
			current *= 1 + growth
		}
	}
	return schedule
}

// BuildPhasedSchedule concatenates a contribution schedule over the
// accumulation horizon with a withdrawal schedule over the retirement
// horizon, both grown independently from their own start, into one signed
// net-flow sequence (contribution - withdrawal).
func BuildPhasedSchedule(contribution, withdrawal, growth float64, accPeriods, retPeriods, frequency int) []float64 {
	if accPeriods < 0 {
		accPeriods = 0
	}
	if retPeriods < 0 {
		retPeriods = 0
	}
	contrib := BuildSchedule(contribution, growth, accPeriods, frequency)
	draw := BuildSchedule(withdrawal, growth, retPeriods, frequency)

	net := make([]float64, 0, accPeriods+retPeriods)
	net = append(net, contrib...)
	for _, w := range draw {
		net = append(net, -w)
	}
	return net
}
