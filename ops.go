package main

import (
	"math"
	"strconv"
)

// opcode names one native operation; dispatch is a single exhaustive
// switch in exec below. The registry maps every recognized spelling,
// aliases included, onto its opcode; absence from the registry is not
// an error, it just falls through to function then literal handling.
type opcode int

const (
	opDrop opcode = iota
	opDup
	opSwap
	opClear
	opRoll
	opRot

	opStoreA
	opStoreB
	opStoreC
	opPushA
	opPushB
	opPushC

	opAdd
	opSub
	opMul
	opDiv
	opAddAll
	opMulAll

	opChs
	opAbs
	opRound
	opInv
	opSqrt
	opThroot
	opProot
	opPow
	opMod
	opFact
	opGcd

	opPi
	opEuler
	opDegRad
	opRadDeg
	opSin
	opAsin
	opCos
	opAcos
	opTan
	opAtan
	opLog2
	opLog10
	opLogN
	opLn

	opDefine
	opComment
)

// Control tokens recognized outside the registry: end terminates a
// function body, close paren terminates a comment. Bare occurrences
// fall through to literal parsing and fail there.
const (
	tokenEnd        = "end"
	tokenOpenParen  = "("
	tokenCloseParen = ")"
)

var commands = map[string]opcode{
	"drop": opDrop,
	"dup":  opDup,
	"swap": opSwap,
	"cls":  opClear,
	"clr":  opClear,
	"roll": opRoll,
	"rot":  opRot,

	"sa": opStoreA, ".a": opStoreA,
	"sb": opStoreB, ".b": opStoreB,
	"sc": opStoreC, ".c": opStoreC,
	"a": opPushA,
	"b": opPushB,
	"c": opPushC,

	"+":  opAdd,
	"-":  opSub,
	"x":  opMul,
	"/":  opDiv,
	"+_": opAddAll,
	"x_": opMulAll,

	"chs":    opChs,
	"abs":    opAbs,
	"round":  opRound,
	"int":    opRound,
	"inv":    opInv,
	"sqrt":   opSqrt,
	"throot": opThroot,
	"proot":  opProot,
	"^":      opPow,
	"exp":    opPow,
	"%":      opMod,
	"mod":    opMod,
	"!":      opFact,
	"gcd":    opGcd,

	"pi":   opPi,
	"e":    opEuler,
	"d_r":  opDegRad,
	"dtor": opDegRad,
	"r_d":  opRadDeg,
	"rtod": opRadDeg,
	"sin":  opSin,
	"asin": opAsin,
	"cos":  opCos,
	"acos": opAcos,
	"tan":  opTan,
	"atan": opAtan,

	"log2":  opLog2,
	"log":   opLog10,
	"log10": opLog10,
	"logn":  opLogN,
	"ln":    opLn,

	"fn":            opDefine,
	tokenOpenParen: opComment,
}

// exec runs one native command against the machine. Every operation
// checks its required stack depth before popping anything; the one
// deliberate exception is drop on an empty stack, which only warns.
func (ev *Eval) exec(name string, code opcode) {
	switch code {
	case opDrop:
		if len(ev.stack) == 0 {
			ev.warnf("drop called on an empty stack")
			return
		}
		ev.stack = ev.stack[:len(ev.stack)-1]

	case opDup:
		ev.need(name, 1)
		ev.stack = append(ev.stack, ev.stack[len(ev.stack)-1])

	case opSwap:
		ev.need(name, 2)
		i := len(ev.stack) - 1
		ev.stack[i], ev.stack[i-1] = ev.stack[i-1], ev.stack[i]

	case opClear:
		ev.stack = ev.stack[:0]

	case opRoll:
		// storage order: the top element moves to the bottom
		ev.need(name, 1)
		i := len(ev.stack) - 1
		top := ev.stack[i]
		copy(ev.stack[1:], ev.stack[:i])
		ev.stack[0] = top

	case opRot:
		// inverse of roll: the bottom element moves to the top
		ev.need(name, 1)
		bottom := ev.stack[0]
		copy(ev.stack, ev.stack[1:])
		ev.stack[len(ev.stack)-1] = bottom

	case opStoreA, opStoreB, opStoreC:
		ev.need(name, 1)
		ev.regs[int(code-opStoreA)] = ev.popv()

	case opPushA, opPushB, opPushC:
		ev.stack = append(ev.stack, ev.regs[int(code-opPushA)])

	case opAdd:
		b, a := ev.pop2f(name)
		ev.pushf(a + b)
	case opSub:
		b, a := ev.pop2f(name)
		ev.pushf(a - b)
	case opMul:
		b, a := ev.pop2f(name)
		ev.pushf(a * b)
	case opDiv:
		b, a := ev.pop2f(name)
		ev.pushf(a / b)

	case opAddAll:
		ev.need(name, 1)
		for len(ev.stack) > 1 {
			b, a := ev.pop2f(name)
			ev.pushf(a + b)
		}
	case opMulAll:
		ev.need(name, 1)
		for len(ev.stack) > 1 {
			b, a := ev.pop2f(name)
			ev.pushf(a * b)
		}

	case opChs:
		ev.pushf(-ev.popf(name))
	case opAbs:
		ev.pushf(math.Abs(ev.popf(name)))
	case opRound:
		ev.pushf(math.Round(ev.popf(name)))
	case opInv:
		ev.pushf(1 / ev.popf(name))
	case opSqrt:
		ev.pushf(math.Sqrt(ev.popf(name)))

	case opThroot:
		b, a := ev.pop2f(name)
		ev.pushf(math.Pow(a, 1/b))

	case opProot:
		ev.quadraticRoots(name)

	case opPow:
		b, a := ev.pop2f(name)
		ev.pushf(math.Pow(a, b))

	case opMod:
		b, a := ev.pop2f(name)
		ev.pushf(math.Mod(a, b))

	case opFact:
		ev.pushf(factorial(math.Floor(ev.popf(name))))

	case opGcd:
		ev.need(name, 2)
		b, a := ev.popu(name), ev.popu(name)
		ev.stack = append(ev.stack, strconv.FormatUint(gcd(a, b), 10))

	case opPi:
		ev.pushf(math.Pi)
	case opEuler:
		ev.pushf(math.E)

	case opDegRad:
		ev.pushf(ev.popf(name) * math.Pi / 180)
	case opRadDeg:
		ev.pushf(ev.popf(name) * 180 / math.Pi)

	case opSin:
		ev.pushf(math.Sin(ev.popf(name)))
	case opAsin:
		ev.pushf(math.Asin(ev.popf(name)))
	case opCos:
		ev.pushf(math.Cos(ev.popf(name)))
	case opAcos:
		ev.pushf(math.Acos(ev.popf(name)))
	case opTan:
		ev.pushf(math.Tan(ev.popf(name)))
	case opAtan:
		ev.pushf(math.Atan(ev.popf(name)))

	case opLog2:
		ev.pushf(math.Log2(ev.popf(name)))
	case opLog10:
		ev.pushf(math.Log10(ev.popf(name)))
	case opLogN:
		// pops base b then value a, computes log base b of a
		b, a := ev.pop2f(name)
		ev.pushf(math.Log(a) / math.Log(b))
	case opLn:
		ev.pushf(math.Log(ev.popf(name)))

	case opDefine:
		ev.defineFunction()
	case opComment:
		ev.skipComment()
	}
}

// quadraticRoots pops c, b, a and solves a·x² + b·x + c = 0, pushing
// both roots as (real, imaginary) pairs. Real roots carry an explicit
// zero imaginary part so the output shape is uniform across the
// discriminant branches.
func (ev *Eval) quadraticRoots(name string) {
	ev.need(name, 3)
	c, b := ev.popf(name), ev.popf(name)
	a := ev.popf(name)
	disc := b*b - 4*a*c
	if disc < 0 {
		re := -b / (2 * a)
		im := math.Sqrt(-disc) / (2 * a)
		ev.pushf(re)
		ev.pushf(im)
		ev.pushf(re)
		ev.pushf(-im)
		return
	}
	root := math.Sqrt(disc)
	ev.pushf((-b + root) / (2 * a))
	ev.pushf(0)
	ev.pushf((-b - root) / (2 * a))
	ev.pushf(0)
}

// factorial multiplies from floor(n) down to 2; anything below 2 is 1.
// Recursion depth is bounded by the input magnitude, one frame per
// decrement.
func factorial(n float64) float64 {
	if n < 2 {
		return 1
	}
	return n * factorial(n-1)
}

func gcd(a, b uint64) uint64 {
	if b == 0 {
		return a
	}
	return gcd(b, a%b)
}

// need halts with a stack underflow unless at least want operands are
// present. Checked before any pop so a failing operation never consumes
// part of its input.
func (ev *Eval) need(name string, want int) {
	if len(ev.stack) < want {
		ev.halt(underflowError{cmd: name, want: want})
	}
}

// popv pops the raw stored value without interpreting it.
func (ev *Eval) popv() (val string) {
	i := len(ev.stack) - 1
	val, ev.stack = ev.stack[i], ev.stack[:i]
	return val
}

func (ev *Eval) popf(name string) float64 {
	ev.need(name, 1)
	val := ev.popv()
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		ev.halt(parseError(val))
	}
	return f
}

// pop2f pops the two topmost operands: b first (most recently pushed),
// then a, matching the a-then-b push order of postfix notation.
func (ev *Eval) pop2f(name string) (b, a float64) {
	ev.need(name, 2)
	return ev.popf(name), ev.popf(name)
}

func (ev *Eval) popu(name string) uint64 {
	ev.need(name, 1)
	val := ev.popv()
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		ev.halt(parseError(val))
	}
	return n
}

func (ev *Eval) pushf(val float64) {
	ev.stack = append(ev.stack, strconv.FormatFloat(val, 'f', ev.prec, 64))
}
