// Package sportradar provides clients for the Sportradar sports-data REST API.
//
// One client exists per sport (soccer, basketball, ice hockey and volleyball).
// Every client composes a shared RequestPipeline that authenticates each
// request with the account API key and masks that key in any error it returns.
//
// # Architecture
//
//   - RequestPipeline: long-lived HTTP client scoped to a base URL, with the
//     api_key query parameter injected into every outgoing request
//   - Sport clients: one method per upstream endpoint, returning the decoded
//     JSON body as a Document
//   - Registry: static sport name to Constructor map for dynamic selection
//   - Credential resolver: environment-sourced API keys per sport and access level
//
// # Usage
//
//	key, ok := sportradar.ResolveAPIKey("soccer", sportradar.Production)
//	if !ok {
//		log.Fatalf("%s is not set", sportradar.APIKeyEnvVar("soccer", sportradar.Production))
//	}
//
//	client, err := sportradar.NewSoccerClient(sportradar.Config{
//		APIKey: key,
//		Locale: "en",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	competitions, err := client.GetCompetitions(ctx, sportradar.Params{})
//
// Clients can also be selected by name:
//
//	newClient, ok := sportradar.ResolveClientConstructor("football")
//	if !ok {
//		log.Fatal(sportradar.ErrUnknownSport)
//	}
//	client, err := newClient(sportradar.Config{APIKey: key})
//
// # Error Handling
//
// Failed requests return a *RequestError whose Params and URL carry the
// request query with the API key masked:
//
//	var reqErr *sportradar.RequestError
//	if errors.As(err, &reqErr) && reqErr.IsUnauthorized() {
//		// reqErr.Params.Get("api_key") == "ab*****xyz"
//	}
//
// The package performs no retries, caching, rate limiting or pagination.
package sportradar
