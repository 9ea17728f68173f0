// Package restapi is the request/response adapter for the employee REST
// service. It keeps no record state of its own.
//
// # Endpoints
//
// All paths resolve beneath the configured base URL (default
// http://dummy.restapiexample.com/api/v1/):
//
//   - GET employees: full list, fed to state.Store.ReplaceAll
//   - POST create: body {"name","salary","age"}
//   - PUT update/{id}: body {"name","salary","age"}
//   - DELETE delete/{id}
//
// Create, update and delete responses are informational; the caller has
// already applied the change locally.
//
// # List Decoding
//
// The upstream service wraps the list as {"status":...,"data":[...]} and
// is loose with types, so List accepts:
//
//   - a bare array or an object with a "data" array
//   - employee_name/employee_salary/employee_age or name/salary/age keys
//   - numbers encoded as JSON numbers or numeric strings
//
// Decoding goes through gjson rather than encoding/json struct tags so the
// key aliases and string-or-number values need no custom unmarshalers.
//
// # Requests
//
// Every request:
//   - honours the caller's context for cancellation
//   - sets Accept: application/json and User-Agent: roster/0.1
//   - carries a random X-Request-ID, logged at glog -v=2 with the outcome
//   - is bounded by the client timeout (5s unless configured)
//
// # Errors
//
// Every failure is returned as *CallError carrying the operation, method,
// path, HTTP status (zero for transport failures) and the wrapped cause:
//
//   - "list (GET employees): execute request: dial tcp: connection refused"
//   - "delete (DELETE delete/7): api delete/7 returned status 429"
//   - "list (GET employees): decode response: invalid json"
//
// The client never retries. Whether a failure matters is the caller's
// decision; the command coordinator only logs it.
package restapi
