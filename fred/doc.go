// Package fred provides a client for the FRED economic data web service.
//
// Every endpoint is a thin wrapper over one request layer: optional query
// parameters are assembled into an ordered mapping (absent values are
// dropped), the client injects file_type and api_key, issues a single GET
// and resolves the outcome into a Result.
//
// # Usage
//
//	client := fred.NewClient(
//		fred.WithAPIKey("your-api-key"),
//		fred.WithLogger(logger),
//	)
//
//	res, err := client.GetCategoryChildren(ctx, "13", fred.Realtime{}, fred.FormatObject)
//	if err != nil {
//		log.Fatal(err) // request could not be built, or the body was not JSON
//	}
//
//	switch r := res.(type) {
//	case *fred.Success:
//		fmt.Println(r.Object)
//	case *fred.ServiceError:
//		fmt.Println("rejected with status", r.Status)
//	case *fred.TransportFailure:
//		fmt.Println("no response:", r.Cause)
//	}
//
// # Response formats
//
//   - FormatObject: JSON decoded into map[string]any / []any
//   - FormatJSON: raw JSON bytes
//   - FormatXML: raw XML bytes
//
// # Errors
//
// Service errors are not retried or classified; inspect the status code.
// Retry policy belongs to the caller and can be plugged in through
// WithHTTPClient.
package fred
