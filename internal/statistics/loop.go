package statistics

import (
	"github.com/markusressel/servo2go/internal/control_loop"
	"github.com/prometheus/client_golang/prometheus"
)

const loopSubsystem = "loop"

type LoopCollector struct {
	loops []*control_loop.Loop

	reads           *prometheus.Desc
	failedReads     *prometheus.Desc
	controlValue    *prometheus.Desc
	processValue    *prometheus.Desc
	processValueAvg *prometheus.Desc
}

func NewLoopCollector(loops []*control_loop.Loop) *LoopCollector {
	return &LoopCollector{
		loops: loops,
		reads: prometheus.NewDesc(prometheus.BuildFQName(namespace, loopSubsystem, "reads_total"),
			"Number of measurements that were processed by the engine of this loop",
			[]string{"id"}, nil,
		),
		failedReads: prometheus.NewDesc(prometheus.BuildFQName(namespace, loopSubsystem, "failed_reads_total"),
			"Number of loop steps that returned an error",
			[]string{"id"}, nil,
		),
		controlValue: prometheus.NewDesc(prometheus.BuildFQName(namespace, loopSubsystem, "control_value"),
			"Most recent control output of this loop",
			[]string{"id"}, nil,
		),
		processValue: prometheus.NewDesc(prometheus.BuildFQName(namespace, loopSubsystem, "process_value"),
			"Most recent process value of this loop",
			[]string{"id"}, nil,
		),
		processValueAvg: prometheus.NewDesc(prometheus.BuildFQName(namespace, loopSubsystem, "process_value_avg"),
			"Moving average of the most recent process values of this loop",
			[]string{"id"}, nil,
		),
	}
}

func (collector *LoopCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.reads
	ch <- collector.failedReads
	ch <- collector.controlValue
	ch <- collector.processValue
	ch <- collector.processValueAvg
}

// Collect implements required collect function for all prometheus collectors
func (collector *LoopCollector) Collect(ch chan<- prometheus.Metric) {
	for _, loop := range collector.loops {
		loopId := loop.GetId()
		stats := loop.GetStatistics()
		ch <- prometheus.MustNewConstMetric(collector.reads, prometheus.CounterValue, float64(stats.Reads), loopId)
		ch <- prometheus.MustNewConstMetric(collector.failedReads, prometheus.CounterValue, float64(stats.FailedReads), loopId)
		ch <- prometheus.MustNewConstMetric(collector.controlValue, prometheus.GaugeValue, stats.LastControlValue, loopId)
		ch <- prometheus.MustNewConstMetric(collector.processValue, prometheus.GaugeValue, stats.LastProcessValue, loopId)
		ch <- prometheus.MustNewConstMetric(collector.processValueAvg, prometheus.GaugeValue, loop.MovingAvg(), loopId)
	}
}
