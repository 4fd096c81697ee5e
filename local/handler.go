package local

import (
	"io"
	"net/http"
	"strings"

	events "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aura-studio/gateway/codec"
)

// localFunctionArn stands in for the ARN a deployed function would
// carry.
const localFunctionArn = "arn:aws:lambda:local:000000000000:function:gateway-local"

// dispatch synthesizes a gateway event from the live request, runs it
// through the proxy engine under a fabricated Lambda context, and
// writes the result back. Engine errors surface as 500 responses with
// the error text as body.
func (e *Engine[I, O]) dispatch(c *gin.Context) {
	ev, err := e.genEvent(c)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	requestID := c.GetString(requestIDKey)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	ev.RequestContext.RequestID = requestID

	ctx := lambdacontext.NewContext(c.Request.Context(), &lambdacontext.LambdaContext{
		AwsRequestID:       requestID,
		InvokedFunctionArn: localFunctionArn,
	})

	resp, err := e.proxy.Invoke(ctx, ev)

	if e.DebugMode && c.GetHeader(DebugHeader) == "1" {
		c.Data(http.StatusOK, "application/json", []byte(genDebugReport(ev, resp, err)))
		return
	}

	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	for k, v := range resp.Headers {
		c.Header(k, v)
	}
	contentType := resp.Headers["Content-Type"]
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(resp.StatusCode, contentType, []byte(resp.Body))
}

// genEvent builds the API Gateway event a deployed function would
// receive for this request. Headers and query parameters keep their
// first value; the full query also travels multi-valued.
func (e *Engine[I, O]) genEvent(c *gin.Context) (events.APIGatewayProxyRequest, error) {
	path := c.Param("path")
	if path == "" {
		path = "/"
	}

	headers := map[string]string{}
	for k, v := range c.Request.Header {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	query := map[string]string{}
	multiQuery := map[string][]string{}
	for k, v := range c.Request.URL.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
		multiQuery[k] = append([]string(nil), v...)
	}

	var body string
	if c.Request.Body != nil {
		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return events.APIGatewayProxyRequest{}, err
		}
		body = string(data)
	}
	if body == "" && (c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead) {
		encoded, err := e.genQueryBody(c)
		if err != nil {
			return events.APIGatewayProxyRequest{}, err
		}
		body = encoded
	}

	return events.APIGatewayProxyRequest{
		Resource:                        "/{proxy+}",
		Path:                            path,
		HTTPMethod:                      c.Request.Method,
		Headers:                         headers,
		QueryStringParameters:           query,
		MultiValueQueryStringParameters: multiQuery,
		PathParameters:                  map[string]string{"proxy": strings.TrimPrefix(path, "/")},
		Body:                            body,
		RequestContext: events.APIGatewayProxyRequestContext{
			Stage:      "local",
			HTTPMethod: c.Request.Method,
			Identity: events.APIGatewayRequestIdentity{
				SourceIP:  c.ClientIP(),
				UserAgent: c.Request.UserAgent(),
			},
		},
	}, nil
}

// genQueryBody re-encodes query parameters as a JSON document so typed
// handlers can be exercised from a browser address bar.
func (e *Engine[I, O]) genQueryBody(c *gin.Context) (string, error) {
	dataMap := map[string]any{}
	for k, v := range c.Request.URL.Query() {
		if len(v) > 0 {
			dataMap[k] = v[0]
		}
	}
	return codec.Encode(dataMap)
}
