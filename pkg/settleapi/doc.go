// Package settleapi defines the settleup.v1.SettlementService Connect API:
// request and response messages, procedure names, a handler constructor and
// a typed client.
//
// Messages are plain Go structs carried by a JSON codec, so any Connect or
// plain HTTP client can call the service by POSTing JSON:
//
//	curl -H 'Content-Type: application/json' \
//	  -d '{"transfers":[{"from":"A","to":"B","amount":40}]}' \
//	  http://localhost:8080/settleup.v1.SettlementService/CalculateBalances
package settleapi
