package journal

import (
	"bytes"
	"fmt"
	"text/template"
)

var runOrgFuncs = template.FuncMap{
	"ints":  joinInts,
	"price": func(x float64) string { return fmt.Sprintf("%.6f", x) },
}

const RunOrgTemplate = `* RUN: {{.Command}} {{.Source}}
:PROPERTIES:
:RUN_ID:      {{.RunID}}
:CREATED:     [{{.Time.Format "2006-01-02 Mon 15:04"}}]
:POINTS:      {{.Points}}
:END:
{{- if .HasEntry }}
- Entry: *{{price .EntryPrice}}* at index {{.EntryIndex}} ({{.Zone}} zone, {{.Signal}})
{{- else }}
- Entry: none
{{- end }}
{{- if .Opportunities }}
- Opportunities: {{ints .Opportunities}}
{{- end }}
- Equilibria: {{.Equilibria}}
`

var runOrg = template.Must(template.New("run").Funcs(runOrgFuncs).Parse(RunOrgTemplate))

// FormatRunOrg renders r as an org-mode heading.
func FormatRunOrg(r RunRecord) (string, error) {
	buf := new(bytes.Buffer)
	if err := runOrg.Execute(buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}
