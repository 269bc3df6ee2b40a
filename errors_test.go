package inject_test

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/km-arc/inject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errsource is an interface chain head for the wrap-depth tests.
type errsource interface{}

type errmiddle interface{}

type errtail interface{}

func TestInjectionError_MessageIdentifiesType(t *testing.T) {
	c := inject.New()

	_, err := inject.Resolve[fooable](c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to find a valid constructor")
	assert.Contains(t, err.Error(), "fooable")
}

func TestInjectionError_ProviderCauseSurvivesUnaltered(t *testing.T) {
	c := inject.New()
	root := errors.New("disk on fire")
	c.Bind((*baz)(nil), func(*inject.Container) (any, error) {
		return nil, fmt.Errorf("loading snapshot: %w", root)
	})

	_, err := inject.Resolve[*baz](c)
	require.Error(t, err)

	// The intermediate fmt wrap and the root error are both reachable.
	assert.ErrorIs(t, err, root)
	assert.Contains(t, err.Error(), "loading snapshot")
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestInjectionError_WrapDepthMatchesAliasChainLength(t *testing.T) {
	c := inject.New()
	root := errors.New("root failure")
	c.Alias((*errsource)(nil), (*errmiddle)(nil))
	c.Alias((*errmiddle)(nil), (*errtail)(nil))
	c.Bind((*errtail)(nil), func(*inject.Container) (any, error) {
		return nil, root
	})

	_, err := inject.Resolve[errsource](c)
	require.Error(t, err)

	// One wrap per registry-provider invocation: source, middle, tail.
	wantTypes := []reflect.Type{
		inject.Key[errsource](),
		inject.Key[errmiddle](),
		inject.Key[errtail](),
	}
	for _, want := range wantTypes {
		var ie *inject.InjectionError
		require.ErrorAs(t, err, &ie, "expected an InjectionError layer for %v", want)
		assert.Equal(t, want, ie.Type)
		err = ie.Unwrap()
	}
	assert.Same(t, root, err, "innermost cause must be the original failure")
}

func TestInjectionError_ConstructionFailurePropagatesWithoutExtraWrap(t *testing.T) {
	c := inject.New()

	// Resolving *foo structurally fails at *bar → *baz → string. The
	// structural layers add no wrapping of their own, so the error is the
	// string failure itself.
	_, err := inject.Resolve[*foo](c)
	require.Error(t, err)

	var ie *inject.InjectionError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, reflect.TypeOf(""), ie.Type)
	assert.Nil(t, ie.Unwrap())
	assert.Equal(t, 1, strings.Count(err.Error(), "inject:"),
		"structural parameter failures must not stack wrappers")
}

func TestInjectionError_NothingIsSuppressed(t *testing.T) {
	c := inject.New()
	sentinel := errors.New("sentinel")
	c.Bind((*baz)(nil), func(*inject.Container) (any, error) {
		return nil, sentinel
	})
	c.Alias((*errsource)(nil), (*baz)(nil))

	// The same root surfaces no matter how deep the entry point sits.
	_, direct := inject.Resolve[*baz](c)
	_, aliased := inject.Resolve[errsource](c)
	assert.ErrorIs(t, direct, sentinel)
	assert.ErrorIs(t, aliased, sentinel)
}
