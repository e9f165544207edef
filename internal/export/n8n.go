// Package export generates n8n workflow definitions that run a flight
// search on a schedule and raise an alert when the cheapest fare drops
// below a threshold.
package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule runs the monitor daily at 09:00.
const DefaultSchedule = "0 9 * * *"

// WorkflowRequest describes the monitoring workflow to generate.
type WorkflowRequest struct {
	Name           string
	Command        string
	AlertThreshold *float64
	Schedule       string
}

// node is one n8n workflow node.
type node struct {
	Parameters  map[string]any `json:"parameters"`
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	TypeVersion float64        `json:"typeVersion"`
	Position    [2]int         `json:"position"`
}

type connection struct {
	Node  string `json:"node"`
	Type  string `json:"type"`
	Index int    `json:"index"`
}

type workflow struct {
	Name        string                               `json:"name"`
	Nodes       []node                               `json:"nodes"`
	Connections map[string]map[string][][]connection `json:"connections"`
}

// cronParser accepts standard five-field cron expressions.
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// GenerateWorkflow renders the n8n workflow JSON for the request. The
// workflow chains a schedule trigger into a command execution into a
// threshold check over the command's JSON output.
func GenerateWorkflow(req WorkflowRequest) ([]byte, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("workflow name is required")
	}
	if req.Command == "" {
		return nil, fmt.Errorf("workflow command is required")
	}

	schedule := req.Schedule
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if _, err := cronParser.Parse(schedule); err != nil {
		return nil, fmt.Errorf("invalid cron schedule %q: %w", schedule, err)
	}

	wf := workflow{
		Name: req.Name,
		Nodes: []node{
			{
				Parameters: map[string]any{
					"rule": map[string]any{
						"interval": []map[string]any{
							{"field": "cronExpression", "expression": schedule},
						},
					},
				},
				ID:          "schedule",
				Name:        "Schedule Trigger",
				Type:        "n8n-nodes-base.scheduleTrigger",
				TypeVersion: 1.1,
				Position:    [2]int{0, 0},
			},
			{
				Parameters:  map[string]any{"command": req.Command},
				ID:          "execute",
				Name:        "Run FlightFinder",
				Type:        "n8n-nodes-base.executeCommand",
				TypeVersion: 1,
				Position:    [2]int{220, 0},
			},
			{
				Parameters:  map[string]any{"jsCode": thresholdCode(req.AlertThreshold)},
				ID:          "check",
				Name:        "Check Threshold",
				Type:        "n8n-nodes-base.code",
				TypeVersion: 2,
				Position:    [2]int{440, 0},
			},
		},
		Connections: map[string]map[string][][]connection{
			"Schedule Trigger": {
				"main": {{{Node: "Run FlightFinder", Type: "main", Index: 0}}},
			},
			"Run FlightFinder": {
				"main": {{{Node: "Check Threshold", Type: "main", Index: 0}}},
			},
		},
	}

	return json.MarshalIndent(wf, "", "  ")
}

// thresholdCode renders the JavaScript body of the threshold-check node.
// n8n executes it against the stdout of the command node.
func thresholdCode(threshold *float64) string {
	value := "null"
	if threshold != nil {
		value = strconv.FormatFloat(*threshold, 'f', -1, 64)
	}

	var b strings.Builder
	b.WriteString("const results = JSON.parse($input.first().json.stdout);\n")
	b.WriteString("const threshold = " + value + ";\n\n")
	b.WriteString("if (threshold && results.length > 0) {\n")
	b.WriteString("  const cheapest = results[0];\n")
	b.WriteString("  if (cheapest.price < threshold) {\n")
	b.WriteString("    return [{ json: { alert: true, ...cheapest } }];\n")
	b.WriteString("  }\n")
	b.WriteString("}\n")
	b.WriteString("return [{ json: { alert: false, results } }];\n")
	return b.String()
}
