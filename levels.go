package facetgrid

import "github.com/vdobler/facetgrid/data"

// A LevelSet is the ordered sequence of distinct levels of a discrete
// variable.
type LevelSet []string

// Index returns the position of level in ls or -1.
func (ls LevelSet) Index(level string) int {
	for i, l := range ls {
		if l == level {
			return i
		}
	}
	return -1
}

// Contains reports whether level is part of ls.
func (ls LevelSet) Contains(level string) bool { return ls.Index(level) >= 0 }

// levelsOf determines the levels of v. An explicit order wins over
// the order declared by the source, which wins over the observed
// order (value order for numbers and datetimes, first appearance
// otherwise).
func levelsOf(v *data.Variable, order []string) LevelSet {
	switch {
	case order != nil:
		return append(LevelSet(nil), order...)
	case v.Declared() != nil:
		return append(LevelSet(nil), v.Declared()...)
	}
	return LevelSet(v.Observed())
}

// bindLevels binds the variable name of src and resolves its levels.
// An empty name yields a nil variable and a nil LevelSet.
func bindLevels(src data.Source, dim, name string, order []string, max int) (*data.Variable, LevelSet, error) {
	if name == "" {
		return nil, nil, nil
	}
	v, err := data.Bind(src, name)
	if err != nil {
		return nil, nil, err
	}
	ls := levelsOf(v, order)
	if max > 0 && len(ls) > max {
		return nil, nil, &TooManyLevelsError{Dim: dim, Var: name, Levels: len(ls), Max: max}
	}
	return v, ls, nil
}
