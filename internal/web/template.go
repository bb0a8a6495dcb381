package web

import (
	"fmt"
	"html/template"
	"io"
	"log"
	"time"

	"github.com/sweeney/frost-monitor/internal/logic"
	"github.com/sweeney/frost-monitor/internal/status"
)

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"uptime": func(d time.Duration) string {
		d = d.Truncate(time.Second)
		days := int(d.Hours()) / 24
		h := int(d.Hours()) % 24
		m := int(d.Minutes()) % 60
		s := int(d.Seconds()) % 60
		if days > 0 {
			return fmt.Sprintf("%dd %dh %dm %ds", days, h, m, s)
		}
		if h > 0 {
			return fmt.Sprintf("%dh %dm %ds", h, m, s)
		}
		if m > 0 {
			return fmt.Sprintf("%dm %ds", m, s)
		}
		return fmt.Sprintf("%ds", s)
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Frost Monitor</title>
<style>
body { font-family: monospace; max-width: 600px; margin: 2em auto; padding: 0 1em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td, th { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
th { width: 40%; }
.active { color: #06c; font-weight: bold; }
.inactive { color: #888; }
.unknown { color: orange; }
</style>
</head>
<body>
<h1>Frost Monitor</h1>

<table>
<tr><th>Output</th><td class="{{.StateClass}}">{{.State}}</td></tr>
{{if .HaveDecision}}<tr><th>Min temperature</th><td>{{.MinC}}&deg;C (threshold {{.ThresholdC}}&deg;C)</td></tr>{{end}}
<tr><th>Uptime</th><td>{{uptime .Snap.Uptime}}</td></tr>
<tr><th>Cycles</th><td>{{.Snap.Counts.Completed}} completed, {{.Snap.Counts.Skipped}} skipped</td></tr>
<tr><th>Telemetry failures</th><td>{{.Snap.Counts.TelemetryFailures}}</td></tr>
</table>

{{if .Sensors}}
<table>
<tr><th>Probe</th><td>Temperature</td></tr>
{{range .Sensors}}
<tr><th>{{.ID}}</th><td>{{printf "%.3f" .TempC}}&deg;C ({{.IntC}}&deg;C)</td></tr>
{{end}}
</table>
{{end}}

<table>
<tr><th>Sensor pattern</th><td>{{.Snap.Config.Pattern}}</td></tr>
<tr><th>Pin (BCM)</th><td>{{.Snap.Config.Pin}}</td></tr>
<tr><th>Poll interval</th><td>{{.Snap.Config.IntervalMs}} ms</td></tr>
<tr><th>Endpoint</th><td>{{.Snap.Config.Endpoint}}</td></tr>
{{if .Snap.Config.MQTTBroker}}<tr><th>MQTT broker</th><td>{{.Snap.Config.MQTTBroker}}</td></tr>{{end}}
</table>

<p><a href="/index.json">JSON</a></p>
</body>
</html>
`

type sensorView struct {
	ID    string
	TempC float64
	IntC  int
}

type indexView struct {
	Snap         status.Snapshot
	State        string
	StateClass   string
	HaveDecision bool
	MinC         int
	ThresholdC   int
	Sensors      []sensorView
}

func renderHTML(w io.Writer, snap status.Snapshot) {
	view := indexView{
		Snap:       snap,
		State:      "UNKNOWN",
		StateClass: "unknown",
		ThresholdC: snap.Config.ThresholdC,
	}
	if snap.HaveDecision {
		view.HaveDecision = true
		view.State = string(snap.Decision.State())
		view.MinC = snap.Decision.MinC
		if snap.Decision.Active {
			view.StateClass = "active"
		} else {
			view.StateClass = "inactive"
		}
	}
	for _, r := range snap.Sample {
		view.Sensors = append(view.Sensors, sensorView{
			ID:    r.ProbeID,
			TempC: r.TempC(),
			IntC:  logic.RoundMilli(r.MilliC),
		})
	}

	if err := indexTmpl.Execute(w, view); err != nil {
		log.Printf("render status page: %v", err)
	}
}
