package registers

import "fmt"

// CC is the MC6809E condition code register: eight individually meaningful
// flags packed, in this bit order (high to low), as E F H I N Z V C.
type CC struct {
	E bool // entire machine state stacked (interrupt servicing)
	F bool // FIRQ mask
	H bool // half-carry, meaningful only after ADD/ADC
	I bool // IRQ mask
	N bool // negative (sign)
	Z bool // zero
	V bool // overflow
	C bool // carry
}

// Label returns the register's canonical name.
func (CC) Label() string {
	return "CC"
}

// String renders the register's packed value in hexadecimal.
func (cc CC) String() string {
	return fmt.Sprintf("%02x", cc.Value())
}

// Value packs the eight flags into a single byte.
func (cc CC) Value() uint8 {
	var v uint8
	if cc.E {
		v |= 0x80
	}
	if cc.F {
		v |= 0x40
	}
	if cc.H {
		v |= 0x20
	}
	if cc.I {
		v |= 0x10
	}
	if cc.N {
		v |= 0x08
	}
	if cc.Z {
		v |= 0x04
	}
	if cc.V {
		v |= 0x02
	}
	if cc.C {
		v |= 0x01
	}
	return v
}

// Load unpacks v into the eight flags.
func (cc *CC) Load(v uint8) {
	cc.E = v&0x80 == 0x80
	cc.F = v&0x40 == 0x40
	cc.H = v&0x20 == 0x20
	cc.I = v&0x10 == 0x10
	cc.N = v&0x08 == 0x08
	cc.Z = v&0x04 == 0x04
	cc.V = v&0x02 == 0x02
	cc.C = v&0x01 == 0x01
}

// And ANDs v into the packed flags and reloads them (used by CWAI).
func (cc *CC) And(v uint8) {
	cc.Load(cc.Value() & v)
}

// Or ORs v into the packed flags and reloads them (used by ORCC).
func (cc *CC) Or(v uint8) {
	cc.Load(cc.Value() | v)
}
