//go:build ignore
// +build ignore

package main

import (
	"math/rand"

	"github.com/aclements/go-gg/table"
	"github.com/vdobler/facetgrid"
	"github.com/vdobler/facetgrid/data"
	"github.com/vdobler/facetgrid/gonumplot"
)

func main() {
	rand.Seed(2)
	var sl, sw, pl []float64
	var species []string
	for i, s := range []string{"setosa", "versicolor", "virginica"} {
		for j := 0; j < 50; j++ {
			f := float64(i)
			sl = append(sl, 5+0.8*f+0.4*rand.NormFloat64())
			sw = append(sw, 3.4-0.4*f+0.3*rand.NormFloat64())
			pl = append(pl, 1.5+2*f+0.3*rand.NormFloat64())
			species = append(species, s)
		}
	}
	iris := data.NewFrame(new(table.Builder).
		Add("sepal_length", sl).
		Add("sepal_width", sw).
		Add("petal_length", pl).
		Add("species", species).
		Done())

	fig := gonumplot.New()
	_, err := facetgrid.Pairplot(iris, facetgrid.PairOptions{
		Hue:    "species",
		Corner: true,
		Height: 2,
		Title:  "Iris",
	}, fig)
	if err != nil {
		panic(err)
	}
	if err := fig.Save("pairplot.svg"); err != nil {
		panic(err)
	}
}
