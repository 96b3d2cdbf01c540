package jflap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regextk/internal/exec"
)

// endsInAB accepts strings over {a,b} ending in "ab"; state 2 is entered by
// the two-symbol read "ab".
const endsInAB = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<!--Created with JFLAP 7.1.-->
<structure>
	<type>fa</type>
	<automaton>
		<state id="0" name="q0">
			<x>60.0</x>
			<y>80.0</y>
			<initial/>
		</state>
		<state id="2" name="q2">
			<x>200.0</x>
			<y>80.0</y>
			<final/>
		</state>
		<transition><from>0</from><to>0</to><read>a</read></transition>
		<transition><from>0</from><to>0</to><read>b</read></transition>
		<transition><from>0</from><to>2</to><read>ab</read></transition>
	</automaton>
</structure>`

func TestImportMultiSymbol(t *testing.T) {
	a, features, err := Import(strings.NewReader(endsInAB))
	require.NoError(t, err)
	assert.Equal(t, 3, a.NumStates(), "one hidden state for the two-symbol read")
	assert.True(t, features.Has(HasMultiSymbolTransition))
	assert.True(t, features.Has(Nondeterministic))

	for in, want := range map[string]exec.Answer{
		"ab": exec.Accept, "aab": exec.Accept, "bab": exec.Accept,
		"": exec.Reject, "a": exec.Reject, "aba": exec.Reject,
	} {
		got, err := exec.Run(a, in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}

func TestImportFlatLayoutAndEpsilon(t *testing.T) {
	doc := `<structure><type>fa</type>
		<state id="7"><initial/></state>
		<state id="3"><final/></state>
		<transition><from>7</from><to>3</to><read/></transition>
	</structure>`
	a, features, err := Import(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, a.NumStates())
	assert.True(t, a.IsStart(0))
	assert.True(t, a.IsAccepting(1))
	assert.False(t, features.Has(HasMultiSymbolTransition))
	assert.True(t, features.Has(Nondeterministic))

	got, err := exec.Run(a, "")
	require.NoError(t, err)
	assert.Equal(t, exec.Accept, got)
}

func TestImportDeterministic(t *testing.T) {
	doc := `<structure><type>fa</type><automaton>
		<state id="0"><initial/><final/></state>
		<transition><from>0</from><to>0</to><read>x</read></transition>
	</automaton></structure>`
	_, features, err := Import(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Zero(t, features)
}

func TestImportErrors(t *testing.T) {
	testCases := map[string]string{
		"not xml":    `<structure`,
		"wrong type": `<structure><type>pda</type></structure>`,
		"bad id":     `<structure><type>fa</type><state id="q"/></structure>`,
		"duplicate":  `<structure><type>fa</type><state id="1"/><state id="1"/></structure>`,
		"unknown endpoint": `<structure><type>fa</type><state id="1"/>
			<transition><from>1</from><to>9</to><read>a</read></transition></structure>`,
		"no read": `<structure><type>fa</type><state id="1"/>
			<transition><from>1</from><to>1</to></transition></structure>`,
	}
	for name, doc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, _, err := Import(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}
