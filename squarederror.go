package enrollnet

// meanSquared accumulates the squared error of a pass over some Data. Its value is the mean over
// every output of every Datum.
type meanSquared struct {
	sum float64
	num int
}

// add adds the result of backward or squaredError for one Datum with 'outputs' outputs.
func (m *meanSquared) add(squared float64, outputs int) {
	m.sum += squared
	m.num += outputs
}

func (m *meanSquared) value() float64 {
	if m.num == 0 {
		return 0
	}
	return m.sum / float64(m.num)
}

// squaredError returns the sum of the squared differences between 'values' and 'targets', which
// must have the same length.
func squaredError(values, targets []float64) float64 {
	var total float64
	for i := range values {
		d := values[i] - targets[i]
		total += d * d
	}

	return total
}
