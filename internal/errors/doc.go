// Package errors provides coded errors for the converter.
//
// Errors carry a Code, a user-facing Message, an optional Cause and
// metadata. Codes survive wrapping, so callers can branch on them at any
// layer:
//
//	creature, err := client.GetCreature(ctx, "pikachu")
//	if errors.IsNotFound(err) {
//	    // unknown creature name
//	}
//
// # Creating and wrapping
//
//	err := errors.NotFoundf("creature %q not found", name)
//	err := errors.Wrap(err, "failed to load creature")
//	err := errors.WrapWithCode(err, errors.CodeUnavailable, "pokeapi unreachable")
//
// Upstream HTTP statuses map onto codes with FromHTTPStatus, and context
// failures with FromContext.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("level", input.Level, 1, 100, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// # Layer guidelines
//
// Clients map transport failures to NotFound, Unavailable, Canceled or
// DeadlineExceeded. Repositories return NotFound for cache misses.
// Orchestrators validate input and return InvalidArgument. The rules engine
// never returns errors: every rule has a defined default.
package errors
