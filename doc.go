// Package inject provides a minimal dependency-resolution container for Go.
//
// # Overview
//
// The container maps types to resolution strategies. Ask it for a type and it
// hands back a fully-constructed value, recursively supplying every dependency
// along the way. Resolution consults explicit bindings first and falls back to
// structural construction: building a struct by resolving each of its fields.
//
// There are deliberately no lifetimes, no scopes, no named bindings and no
// cycle detection. An Instance binding is the only fixed-value form; everything
// else is rebuilt on every resolution.
//
// # Type tokens
//
// Bindings and lookups are keyed by reflect.Type. Rather than constructing one
// by hand, pass a token:
//
//	(*PaymentGateway)(nil)  // pointer-to-interface → keys the interface type
//	(*StripeGateway)(nil)   // pointer-to-struct    → keys *StripeGateway
//	inject.Key[PaymentGateway]()  // generic equivalent
//
// # Bindings
//
//	c := inject.New()
//
//	// Fixed value — every resolution returns this exact instance
//	c.Instance((*Config)(nil), cfg)
//
//	// Interface → implementation; the implementation is resolved
//	// (and therefore rebuilt) on every request
//	c.Alias((*PaymentGateway)(nil), (*StripeGateway)(nil))
//
//	// Arbitrary factory; may resolve further dependencies itself
//	c.Bind((*Ledger)(nil), func(c *inject.Container) (any, error) {
//	    cfg, err := inject.Resolve[*Config](c)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return OpenLedger(cfg.LedgerPath)
//	})
//
// # Resolving
//
//	// Untyped
//	raw, err := c.Make((*PaymentGateway)(nil))
//
//	// Generic (preferred — no type assertion required)
//	gw, err := inject.Resolve[PaymentGateway](c)
//
// Types without a binding are constructed structurally. A struct whose fields
// are all exported has exactly one usable constructor — its composite literal —
// and each field is resolved from the container in declaration order:
//
//	type Checkout struct {
//	    Gateway PaymentGateway
//	    Ledger  *Ledger
//	}
//
//	co, err := inject.Resolve[*Checkout](c) // resolves Gateway, then Ledger
//
// Interfaces, non-struct kinds and structs with unexported fields have no
// usable constructor; resolving one without a binding fails.
//
// # Errors
//
// Every failure surfaces as *InjectionError. Nothing is caught internally: a
// single unresolvable dependency anywhere in the graph aborts the whole
// top-level call. Errors wrap their cause, so errors.Is and errors.As walk the
// chain down to the root failure:
//
//	_, err := inject.Resolve[*Checkout](c)
//	var ie *inject.InjectionError
//	if errors.As(err, &ie) {
//	    log.Printf("could not build %v: %v", ie.Type, err)
//	}
//
// # Observability
//
// Each resolution attempt is reported to a Sink, which defaults to a no-op.
// The sink is fire-and-forget; it can never make resolution fail. The zapsink
// subpackage adapts a *zap.Logger.
//
//	c := inject.New(inject.WithSink(zapsink.New(logger)))
//
// # Caveats
//
// The registry is safe for concurrent resolution once populated (reads take an
// RLock), but binding and resolving concurrently is not a supported pattern.
// Dependency cycles are not detected: resolving a cyclic graph recurses until
// the stack runs out.
package inject
