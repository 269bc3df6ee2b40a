package inject

import (
	"fmt"
	"reflect"
	"sync"
)

// ── Provider ──────────────────────────────────────────────────────────────────

// Provider is the resolution strategy attached to a binding. It is invoked
// every time the bound type is requested and may recursively resolve further
// dependencies through the container it receives.
type Provider func(c *Container) (any, error)

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the resolution engine: a binding registry plus a recursive
// resolver. Explicit bindings always win; everything else is constructed
// structurally, field by field, on every request.
//
// A Container holds no state across resolutions beyond the registry itself.
type Container struct {
	mu sync.RWMutex

	// TypeKey → resolution strategy; last bind wins
	providers map[reflect.Type]Provider

	sink Sink
}

// New creates an empty container.
func New(opts ...Option) *Container {
	c := &Container{
		providers: make(map[reflect.Type]Provider),
		sink:      nopSink{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Instance binds token to a pre-built value. Every resolution of the token's
// type returns value itself, never a copy or a rebuild — the one fixed-value
// form the container offers.
//
//	c.Instance((*Config)(nil), cfg)
//
// Overwrites any prior binding for the same type. Never fails.
func (c *Container) Instance(token, value any) {
	c.put(mustKey(token), func(*Container) (any, error) {
		return value, nil
	})
}

// Alias binds an abstract type to a concrete one. Resolving the abstract type
// resolves the concrete type, recursively and on every request: nothing is
// cached unless the concrete type is itself Instance-bound.
//
//	c.Alias((*PaymentGateway)(nil), (*StripeGateway)(nil))
//
// The concrete type need not be bound or even constructible at bind time;
// failures surface only when the alias is resolved. Overwrites any prior
// binding for the abstract type. Never fails.
func (c *Container) Alias(abstract, concrete any) {
	target := mustKey(concrete)
	c.put(mustKey(abstract), func(c *Container) (any, error) {
		return c.MakeType(target)
	})
}

// Bind binds token to an arbitrary provider. The provider runs on every
// resolution of the token's type and may call back into the container.
//
//	c.Bind((*Ledger)(nil), func(c *inject.Container) (any, error) {
//	    return OpenLedger("/var/lib/ledger")
//	})
//
// Overwrites any prior binding for the same type. Never fails at bind time.
func (c *Container) Bind(token any, provider Provider) {
	if provider == nil {
		panic("inject: Bind called with nil provider")
	}
	c.put(mustKey(token), provider)
}

func (c *Container) put(t reflect.Type, p Provider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.providers[t] = p
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Make resolves the type named by token.
//
//	gw, err := c.Make((*PaymentGateway)(nil))
func (c *Container) Make(token any) (any, error) {
	return c.MakeType(mustKey(token))
}

// MakeType resolves t. This is the core algorithm; alias providers and
// structural construction recurse into it for every dependency.
//
// A registered provider always takes precedence, even when t could be
// constructed structurally. Each provider failure is wrapped exactly once per
// resolution layer, so a chain of aliases yields a cause chain whose depth
// matches the chain length.
func (c *Container) MakeType(t reflect.Type) (any, error) {
	if t == nil {
		return nil, &InjectionError{Reason: "cannot resolve nil type"}
	}

	c.notify(t)

	c.mu.RLock()
	provider, ok := c.providers[t]
	c.mu.RUnlock()

	if ok {
		// The provider may recursively call back into MakeType, so the
		// error may already carry a chain of nested InjectionErrors.
		result, err := provider(c)
		if err != nil {
			return nil, &InjectionError{Type: t, Cause: err}
		}
		// Runtime type check. Static typing cannot enforce what a
		// Provider returns, so a mismatched binding is caught here
		// rather than as a panic at the caller's assertion.
		if err := checkAssignable(t, result); err != nil {
			return nil, err
		}
		return result, nil
	}

	return c.construct(t)
}

// notify reports the attempt to the sink. The sink is an external
// collaborator and must never make resolution fail, so panics stop here.
func (c *Container) notify(t reflect.Type) {
	defer func() {
		_ = recover()
	}()
	c.sink.ResolutionAttempt(t)
}

// checkAssignable verifies that a provider result actually satisfies the
// requested type.
func checkAssignable(t reflect.Type, result any) error {
	rt := reflect.TypeOf(result)
	if rt == nil {
		return &InjectionError{
			Type:   t,
			Reason: "provider returned nil",
		}
	}
	if !rt.AssignableTo(t) {
		return &InjectionError{
			Type:   t,
			Reason: fmt.Sprintf("provider returned %s, which is not assignable", rt),
		}
	}
	return nil
}

// ── Registry introspection ────────────────────────────────────────────────────

// Bound reports whether the type named by token has an explicit binding.
// Structurally constructible types are not "bound".
func (c *Container) Bound(token any) bool {
	t := mustKey(token)
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.providers[t]
	return ok
}

// Bindings returns the TypeKeys of all explicit bindings (for debugging).
// Order is unspecified.
func (c *Container) Bindings() []reflect.Type {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]reflect.Type, 0, len(c.providers))
	for t := range c.providers {
		out = append(out, t)
	}
	return out
}

// ── Type tokens ───────────────────────────────────────────────────────────────

// mustKey derives the TypeKey from a token. A pointer-to-interface token
// designates the interface type, mirroring how interface types must be named
// in Go; every other non-nil value designates its own dynamic type. A
// reflect.Type passes through unchanged.
func mustKey(token any) reflect.Type {
	if t, ok := token.(reflect.Type); ok {
		if t == nil {
			panic("inject: nil reflect.Type token")
		}
		return t
	}
	t := reflect.TypeOf(token)
	if t == nil {
		panic("inject: untyped nil token; use a typed token such as (*T)(nil)")
	}
	if t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Interface {
		return t.Elem()
	}
	return t
}

// Key returns the TypeKey for T: the interface type itself when T is an
// interface, otherwise T as written (so Key[*Foo]() is the pointer type).
func Key[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// Resolve resolves T from the container without a type assertion at the
// call site.
//
//	gw, err := inject.Resolve[PaymentGateway](c)
func Resolve[T any](c *Container) (T, error) {
	var zero T
	result, err := c.MakeType(Key[T]())
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, &InjectionError{
			Type:   Key[T](),
			Reason: fmt.Sprintf("resolved to unexpected type %T", result),
		}
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on failure. Intended for
// bootstrap code where a missing binding is a programming error.
func MustResolve[T any](c *Container) T {
	v, err := Resolve[T](c)
	if err != nil {
		panic(err)
	}
	return v
}
