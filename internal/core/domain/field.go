package domain

// Field is one labelled value of an entity's display form.
type Field struct {
	Label string
	Value any
}

// Labels extracts the labels of fs in order.
func Labels(fs []Field) []string {
	labels := make([]string, len(fs))
	for i, f := range fs {
		labels[i] = f.Label
	}
	return labels
}
