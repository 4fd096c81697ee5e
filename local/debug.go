package local

import (
	"encoding/json"

	events "github.com/aws/aws-lambda-go/events"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// DebugHeader marks a request for a debug report. It only takes effect
// when the engine runs with debug mode on.
const DebugHeader = "X-Gateway-Debug"

// genDebugReport renders the full exchange as one JSON document: the
// synthesized event, the staged status and headers, the body (inlined
// as JSON when it is JSON), and the engine error if any.
func genDebugReport(ev events.APIGatewayProxyRequest, resp events.APIGatewayProxyResponse, err error) string {
	report := "{}"
	if data, jsonErr := json.Marshal(ev); jsonErr == nil {
		report, _ = sjson.SetRaw(report, "event", string(data))
	}
	report, _ = sjson.Set(report, "status", resp.StatusCode)
	report, _ = sjson.Set(report, "headers", resp.Headers)
	if resp.Body != "" && gjson.Valid(resp.Body) {
		report, _ = sjson.SetRaw(report, "body", resp.Body)
	} else {
		report, _ = sjson.Set(report, "body", resp.Body)
	}
	if err != nil {
		report, _ = sjson.Set(report, "error", err.Error())
	}
	return report
}
