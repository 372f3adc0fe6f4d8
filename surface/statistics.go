package surface

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

type Statistics struct {
	FramesPresented   int
	SuboptimalFrames  int
	SwapchainsCreated int
	Retirements       int
}

func (s *Statistics) Clear() {
	s.FramesPresented = 0
	s.SuboptimalFrames = 0
	s.SwapchainsCreated = 0
	s.Retirements = 0
}

func (s *Surface) Statistics() Statistics {
	return s.stats
}

func (s *Surface) ResetStatistics() {
	s.stats.Clear()
}

// BuildStatsString produces a JSON document describing the surface's current swapchain and
// its lifetime statistics
func (s *Surface) BuildStatsString() string {
	writer := jwriter.NewWriter()
	s.PrintStats(&writer)
	return string(writer.Bytes())
}

func (s *Surface) PrintStats(writer *jwriter.Writer) {
	json := writer.Object()
	defer json.End()

	json.Name("State").String(s.state.String())
	json.Name("Format").String(s.info.format.String())
	json.Name("ColorSpace").String(s.info.colorSpace.String())
	json.Name("MinImageCount").Int(s.info.minImageCount)
	json.Name("PresentModes").String(s.info.presentModes.String())

	config := json.Name("Config").Object()
	config.Name("Width").Int(s.config.Width)
	config.Name("Height").Int(s.config.Height)
	config.Name("PresentMode").String(s.config.PresentMode.String())
	config.End()

	json.Name("ImageCount").Int(len(s.images))
	json.Name("Suboptimal").Bool(s.suboptimal)

	pool := json.Name("SemaphorePool").Object()
	pool.Name("Free").Int(s.semaphorePool.Len())
	pool.Name("Created").Int(s.semaphorePool.Created())
	pool.End()

	stats := json.Name("Statistics").Object()
	stats.Name("FramesPresented").Int(s.stats.FramesPresented)
	stats.Name("SuboptimalFrames").Int(s.stats.SuboptimalFrames)
	stats.Name("SwapchainsCreated").Int(s.stats.SwapchainsCreated)
	stats.Name("Retirements").Int(s.stats.Retirements)
	stats.End()
}
