package main

import (
	"flag"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"idlepoker-server/internal/rng"
	"idlepoker-server/internal/util"
	"idlepoker-server/pkg/game"
	"idlepoker-server/pkg/poker"
)

var ticks = flag.Int("ticks", 1000, "the number of ticks to simulate")
var seed = flag.Int64("seed", 0, "the random seed, 0 picks one")

type summary struct {
	clears    int
	destroyed int
	best      *game.TickResult
	hands     map[poker.Hand]int
}

func main() {
	flag.Parse()
	logrus.SetLevel(logrus.WarnLevel)

	r := rng.NewSeeded(*seed)
	name := util.GetRandomName(r)
	pterm.Info.Printfln("Simulating %s for %d ticks (seed %d)", pterm.LightCyan(name), *ticks, r.Seed())

	e := game.New(r)
	sum := summary{hands: make(map[poker.Hand]int)}

	bar, _ := pterm.DefaultProgressbar.WithTotal(*ticks).WithTitle("Ticking").Start()
	for i := 0; i < *ticks; i++ {
		step(e)

		res := e.AdvanceTick()
		sum.hands[res.Hand]++
		sum.destroyed += len(res.Destroyed)
		if res.Cleared {
			sum.clears++
		}

		if sum.best == nil || res.Score > sum.best.Score {
			sum.best = res
		}

		bar.Increment()
	}

	_, _ = bar.Stop()
	render(e.View(), &sum)
}

func render(v *game.View, sum *summary) {
	data := pterm.TableData{
		{"Ante", strconv.Itoa(v.Ante)},
		{"Blinds cleared", strconv.Itoa(sum.clears)},
		{"Blind", pterm.Sprintf("%d / %d", v.BlindProgress, v.BlindGoal)},
		{"Chips", strconv.Itoa(v.Chips)},
		{"Money", strconv.Itoa(v.Money)},
		{"Slots", strconv.Itoa(v.MaxSlots)},
		{"Jokers", pterm.Sprintf("%d / %d", len(v.Jokers), v.MaxJokers)},
		{"Jokers destroyed", strconv.Itoa(sum.destroyed)},
		{"Cards", strconv.Itoa(len(v.Cards) + len(v.Deck) + len(v.Discard))},
	}

	if sum.best != nil {
		data = append(data, []string{"Best score", pterm.Sprintf("%d (%s)", sum.best.Score, sum.best.Hand)})
	}

	_ = pterm.DefaultTable.WithData(data).Render()

	hands := pterm.TableData{{"Hand", "Ticks"}}
	for _, h := range poker.Hands {
		if n := sum.hands[h]; n > 0 {
			hands = append(hands, []string{h.String(), strconv.Itoa(n)})
		}
	}

	_ = pterm.DefaultTable.WithHasHeader().WithData(hands).Render()

	for _, j := range v.Jokers {
		pterm.Success.Printfln("%s: %s", j.Name, j.Desc)
	}
}
