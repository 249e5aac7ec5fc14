//go:build ignore
// +build ignore

package main

import (
	"math"
	"math/rand"

	"github.com/aclements/go-gg/table"
	"github.com/vdobler/facetgrid"
	"github.com/vdobler/facetgrid/data"
	"github.com/vdobler/facetgrid/gonumplot"
)

func main() {
	rand.Seed(1)
	var bill, tip []float64
	var day, tod, smoker []string
	var size []int
	days := []string{"Thur", "Fri", "Sat", "Sun"}
	for i := 0; i < 120; i++ {
		b := 5 + 45*rand.Float64()
		bill = append(bill, math.Round(100*b)/100)
		tip = append(tip, math.Round(100*(0.15*b+rand.NormFloat64()))/100)
		day = append(day, days[i%4])
		if rand.Intn(3) == 0 {
			tod = append(tod, "Lunch")
		} else {
			tod = append(tod, "Dinner")
		}
		if rand.Intn(2) == 0 {
			smoker = append(smoker, "Yes")
		} else {
			smoker = append(smoker, "No")
		}
		size = append(size, 1+rand.Intn(6))
	}

	tips := data.NewFrame(new(table.Builder).
		Add("total_bill", bill).
		Add("tip", tip).
		Add("day", day).
		Add("time", tod).
		Add("smoker", smoker).
		Add("size", size).
		Done()).
		SetCategories("time", "Lunch", "Dinner").
		SetCategories("day", days...)

	fig := gonumplot.New()
	_, err := facetgrid.Relplot(tips, facetgrid.RelOptions{
		Options: facetgrid.Options{
			Col:     "day",
			ColWrap: 3,
			Hue:     "time",
			Palette: "Set1",
			Height:  2.5,
			Title:   "Tips",
		},
		X:     "total_bill",
		Y:     "tip",
		Size:  "size",
		Style: "smoker",
	}, fig)
	if err != nil {
		panic(err)
	}
	if err := fig.Save("relplot.png"); err != nil {
		panic(err)
	}
}
