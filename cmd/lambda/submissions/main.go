package main

import (
	"context"
	"net/http"

	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/handlers"
	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/pkg/lambda"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
)

func init() {
	// Warm the shared container during the cold start so the first
	// invocation does not pay for store initialization.
	if _, err := lambda.GetConnectionManager().GetContainer(context.Background()); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req := lambda.FromAPIGateway(event)

	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		return lambda.Error(http.StatusInternalServerError, "Internal server error").ToAPIGateway(), nil
	}

	queryHandler := handlers.NewQueryHandler(container.SubmissionService)

	var resp *lambda.Response
	switch req.Method {
	case http.MethodGet:
		resp, err = queryHandler.HandleList(ctx, req)
	case http.MethodOptions:
		resp = lambda.NoContent(http.StatusNoContent)
	default:
		resp = lambda.Error(http.StatusNotFound, "Not found")
	}

	if err != nil {
		return lambda.Error(http.StatusInternalServerError, "Internal server error").ToAPIGateway(), nil
	}

	return resp.ToAPIGateway(), nil
}

func main() {
	awslambda.Start(handler)
}
