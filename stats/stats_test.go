package stats

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/named-data/ndnsim/fw/fw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]int{1, 2, 3, 4})
	assert.Equal(t, 4, s.N)
	assert.InDelta(t, 2.5, s.Mean, 1e-9)
	assert.InDelta(t, math.Sqrt(5.0/3.0), s.StdDev, 1e-9)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)

	s = Summarize([]float64{0.5})
	assert.Equal(t, 0.5, s.Mean)
	assert.Equal(t, 0.0, s.StdDev)

	assert.Equal(t, Summary{}, Summarize([]uint64(nil)))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.25, Ratio(1, 4))
	assert.Equal(t, 0.0, Ratio(uint64(3), uint64(0)))
	assert.Equal(t, 1.5, Ratio(3.0, 2))
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := Printer{W: &buf, Padding: 6}
	p.Print("key", 1)
	p.Print("too-long-key", "x")
	assert.Equal(t, "   key=1\ntoo-long-key=x\n", buf.String())
}

func TestReport(t *testing.T) {
	network := fw.NewNetwork(fw.Options{CsCapacity: 5, InterestLifetime: 20})
	a, err := network.AddNode("/a", []byte("world"))
	require.NoError(t, err)
	b, _ := network.AddNode("/b", nil)
	c, _ := network.AddNode("/c", []byte("hello"))
	require.NoError(t, network.Connect(a, b))
	require.NoError(t, network.Connect(b, c))
	network.Node(a).Express("/c")

	res := network.RunToQuiescence(550)
	require.Equal(t, 18, res.Steps)

	r := NewReport(network, res)
	require.Len(t, r.Nodes, 3)
	assert.Equal(t, "/b", r.Nodes[1].Name)
	assert.InDelta(t, 1.0/18.0, r.Nodes[1].AverageLoad, 1e-9)
	assert.Equal(t, 0.0, r.Nodes[2].AverageLoad)
	assert.InDelta(t, 2.0/54.0, r.Load.Mean, 1e-9)
	assert.Equal(t, uint64(1), r.SatisfiedInterests())
	// misses at A and B, hit at C
	assert.InDelta(t, 1.0/3.0, r.CsHitRatio(), 1e-9)

	var buf bytes.Buffer
	r.Print(&buf)
	out := buf.String()
	assert.Contains(t, out, "Total packet loss: 0\n")
	assert.Contains(t, out, "No-route drops: 0\n")
	assert.Contains(t, out, "Number of steps: 18\n")
	assert.Contains(t, out, "/c"+strings.Repeat(" ", 24)+" 0\n")
	assert.Contains(t, out, "   satisfied=1\n")
	assert.NotContains(t, out, "Warning")
}
