package layers_test

// Shared fixtures for the layers tests: a gate-recording circuit for
// asserting emission order, and a minimal statevector simulator for
// semantic round-trip checks. Both satisfy layers.Circuit.

import (
	"math"
	"math/cmplx"
)

// gateOp is one recorded gate application.
type gateOp struct {
	name   string
	qubits []int
	theta  float64
}

// recorder captures every gate call in order without simulating.
type recorder struct {
	n   int
	ops []gateOp
}

func newRecorder(n int) *recorder { return &recorder{n: n} }

func (r *recorder) NumQubits() int { return r.n }

func (r *recorder) H(q int) { r.ops = append(r.ops, gateOp{name: "H", qubits: []int{q}}) }
func (r *recorder) X(q int) { r.ops = append(r.ops, gateOp{name: "X", qubits: []int{q}}) }
func (r *recorder) Y(q int) { r.ops = append(r.ops, gateOp{name: "Y", qubits: []int{q}}) }
func (r *recorder) Z(q int) { r.ops = append(r.ops, gateOp{name: "Z", qubits: []int{q}}) }

func (r *recorder) RX(q int, theta float64) {
	r.ops = append(r.ops, gateOp{name: "RX", qubits: []int{q}, theta: theta})
}

func (r *recorder) RY(q int, theta float64) {
	r.ops = append(r.ops, gateOp{name: "RY", qubits: []int{q}, theta: theta})
}

func (r *recorder) RZ(q int, theta float64) {
	r.ops = append(r.ops, gateOp{name: "RZ", qubits: []int{q}, theta: theta})
}

func (r *recorder) CNOT(control, target int) {
	r.ops = append(r.ops, gateOp{name: "CNOT", qubits: []int{control, target}})
}

// opNames projects the recorded sequence onto gate names.
func opNames(ops []gateOp) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.name
	}
	return out
}

// simCircuit is a bit-mask statevector simulator, just enough backend
// to check layer semantics end to end.
type simCircuit struct {
	n    int
	amps []complex128
}

// newSim starts n qubits in |0...0⟩.
func newSim(n int) *simCircuit {
	amps := make([]complex128, 1<<n)
	amps[0] = 1
	return &simCircuit{n: n, amps: amps}
}

func (s *simCircuit) NumQubits() int { return s.n }

// state returns a snapshot of the amplitudes.
func (s *simCircuit) state() []complex128 {
	out := make([]complex128, len(s.amps))
	copy(out, s.amps)
	return out
}

func (s *simCircuit) H(q int) {
	f := complex(1/math.Sqrt2, 0)
	bit := 1 << q
	next := make([]complex128, len(s.amps))
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			next[i] = f * (s.amps[i] + s.amps[j])
			next[j] = f * (s.amps[i] - s.amps[j])
		}
	}
	s.amps = next
}

func (s *simCircuit) X(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

func (s *simCircuit) Y(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = 1i*s.amps[j], -1i*s.amps[i]
		}
	}
}

func (s *simCircuit) Z(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] *= -1
		}
	}
}

func (s *simCircuit) RX(q int, theta float64) {
	bit := 1 << q
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	next := make([]complex128, len(s.amps))
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			next[i] = c*s.amps[i] + js*s.amps[j]
			next[j] = js*s.amps[i] + c*s.amps[j]
		}
	}
	s.amps = next
}

func (s *simCircuit) RY(q int, theta float64) {
	bit := 1 << q
	c := complex(math.Cos(theta/2), 0)
	sn := complex(math.Sin(theta/2), 0)
	next := make([]complex128, len(s.amps))
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			next[i] = c*s.amps[i] - sn*s.amps[j]
			next[j] = sn*s.amps[i] + c*s.amps[j]
		}
	}
	s.amps = next
}

func (s *simCircuit) RZ(q int, theta float64) {
	bit := 1 << q
	phase := cmplx.Exp(complex(0, theta/2))
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] *= phase
		} else {
			s.amps[i] *= cmplx.Conj(phase)
		}
	}
}

func (s *simCircuit) CNOT(control, target int) {
	cBit := 1 << control
	tBit := 1 << target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}
