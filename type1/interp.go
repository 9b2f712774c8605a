package type1

// interp runs the scanner's node stream against an operand stack and a
// dictionary stack, implementing exactly the operators that appear in the
// standard Type 1 font program prologue/trailer. Anything it does not
// recognize is pushed back as a Name placeholder instead of aborting the
// scan, since unsupported constructs (findfont cache lookups, UniqueID
// checks) only ever gate a branch this scanner forces to the "build fresh"
// side.
type interp struct {
	lex    *lexer
	ostack []interface{}
	dstack []Dict
	fonts  map[Name]Dict
}

func newInterp(lex *lexer) *interp {
	return &interp{lex: lex}
}

// run executes the entire node stream, splicing in the decrypted eexec
// block when it is reached, and stops as soon as a font has been
// registered via definefont: everything a Read call needs (FontInfo,
// Private, CharStrings, Encoding) is assembled by that point, and the
// bytes that follow are just a zero-fill trailer.
func (ip *interp) run() error {
	for len(ip.fonts) == 0 {
		n, ok, err := ip.lex.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := ip.step(n); err != nil {
			return err
		}
	}
	return nil
}

func (ip *interp) step(n node) error {
	if n.kind == nodeLiteral {
		ip.push(n.val)
		return nil
	}
	name, _ := n.val.(Name)
	return ip.exec(name)
}

func (ip *interp) push(v interface{}) {
	ip.ostack = append(ip.ostack, v)
}

func (ip *interp) pop() interface{} {
	if len(ip.ostack) == 0 {
		return nil
	}
	v := ip.ostack[len(ip.ostack)-1]
	ip.ostack = ip.ostack[:len(ip.ostack)-1]
	return v
}

func (ip *interp) top() interface{} {
	if len(ip.ostack) == 0 {
		return nil
	}
	return ip.ostack[len(ip.ostack)-1]
}

func toInt(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case Integer:
		return int64(n), true
	case Real:
		return int64(n), true
	default:
		return 0, false
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case Integer:
		return float64(n), true
	case Real:
		return float64(n), true
	default:
		return 0, false
	}
}

func numberValue(f float64) interface{} {
	if f == float64(int64(f)) {
		return Integer(int64(f))
	}
	return Real(f)
}

func (ip *interp) popInt() (int64, error) {
	v := ip.pop()
	n, ok := toInt(v)
	if !ok {
		return 0, invalidSince("expected a number operand")
	}
	return n, nil
}

func (ip *interp) runProc(v interface{}) error {
	proc, ok := v.(procValue)
	if !ok {
		return nil
	}
	for _, n := range proc {
		if err := ip.step(n); err != nil {
			return err
		}
	}
	return nil
}

// equalValues compares two scanner values without risking a runtime panic
// on uncomparable types (String/Array/Dict/procValue are slices or maps).
func equalValues(a, b interface{}) bool {
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			return af == bf
		}
		return false
	}
	switch av := a.(type) {
	case Name:
		bv, ok := b.(Name)
		return ok && av == bv
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && string(av) == string(bv)
	default:
		return false
	}
}

func (ip *interp) currentDict() Dict {
	if len(ip.dstack) == 0 {
		ip.dstack = append(ip.dstack, Dict{})
	}
	return ip.dstack[len(ip.dstack)-1]
}

func (ip *interp) exec(name Name) error {
	switch name {
	case "dict":
		if _, err := ip.popInt(); err != nil {
			return err
		}
		ip.push(Dict{})
	case "array":
		n, err := ip.popInt()
		if err != nil {
			return err
		}
		ip.push(make(Array, n))
	case "string":
		n, err := ip.popInt()
		if err != nil {
			return err
		}
		ip.push(String(make([]byte, n)))
	case "begin":
		v := ip.pop()
		d, ok := v.(Dict)
		if !ok {
			d = Dict{}
		}
		ip.dstack = append(ip.dstack, d)
	case "end":
		if len(ip.dstack) > 0 {
			ip.dstack = ip.dstack[:len(ip.dstack)-1]
		}
	case "currentdict":
		ip.push(ip.currentDict())
	case "def":
		val := ip.pop()
		key := ip.pop()
		kn, ok := key.(Name)
		if !ok {
			return nil
		}
		ip.currentDict()[kn] = val
	case "dup":
		ip.push(ip.top())
	case "pop":
		ip.pop()
	case "exch":
		if len(ip.ostack) >= 2 {
			n := len(ip.ostack)
			ip.ostack[n-1], ip.ostack[n-2] = ip.ostack[n-2], ip.ostack[n-1]
		}
	case "index":
		n, err := ip.popInt()
		if err != nil {
			return err
		}
		if n < 0 || int(n) >= len(ip.ostack) {
			return invalidSince("index out of range")
		}
		ip.push(ip.ostack[len(ip.ostack)-1-int(n)])
	case "put":
		val := ip.pop()
		idx := ip.pop()
		composite := ip.pop()
		switch c := composite.(type) {
		case Array:
			if i, ok := toInt(idx); ok && i >= 0 && int(i) < len(c) {
				c[i] = val
			}
		case Dict:
			if kn, ok := idx.(Name); ok {
				c[kn] = val
			}
		}
	case "get":
		idx := ip.pop()
		composite := ip.pop()
		switch c := composite.(type) {
		case Array:
			if i, ok := toInt(idx); ok && i >= 0 && int(i) < len(c) {
				ip.push(c[i])
				return nil
			}
		case Dict:
			if kn, ok := idx.(Name); ok {
				ip.push(c[kn])
				return nil
			}
		case String:
			if i, ok := toInt(idx); ok && i >= 0 && int(i) < len(c) {
				ip.push(Integer(c[i]))
				return nil
			}
		}
		ip.push(Integer(0))
	case "known":
		key := ip.pop()
		composite := ip.pop()
		d, ok := composite.(Dict)
		if !ok {
			ip.push(Boolean(false))
			return nil
		}
		kn, ok := key.(Name)
		if !ok {
			ip.push(Boolean(false))
			return nil
		}
		_, found := d[kn]
		ip.push(Boolean(found))
	case "readonly", "executeonly", "noaccess", "bind":
		// attribute operators leave the operand stack unchanged
	case "mark":
		ip.push(markValue{})
	case "cleartomark":
		for len(ip.ostack) > 0 {
			v := ip.pop()
			if _, ok := v.(markValue); ok {
				break
			}
		}
	case "currentfile", "userdict", "systemdict", "FontDirectory",
		"StandardEncoding", "save", "restore", "findfont":
		ip.push(name)
	case "closefile":
		ip.pop()
	case "if":
		proc := ip.pop()
		cond, _ := ip.pop().(Boolean)
		if cond {
			return ip.runProc(proc)
		}
	case "ifelse":
		proc2 := ip.pop()
		proc1 := ip.pop()
		cond, _ := ip.pop().(Boolean)
		if cond {
			return ip.runProc(proc1)
		}
		return ip.runProc(proc2)
	case "for":
		proc := ip.pop()
		limit, _ := toFloat(ip.pop())
		incr, _ := toFloat(ip.pop())
		initial, _ := toFloat(ip.pop())
		if incr == 0 {
			return nil
		}
		for i, count := initial, 0; (incr > 0 && i <= limit) || (incr < 0 && i >= limit); i += incr {
			ip.push(numberValue(i))
			if err := ip.runProc(proc); err != nil {
				return err
			}
			count++
			if count > 100000 {
				return invalidSince("for loop exceeded iteration limit")
			}
		}
	case "forall":
		proc := ip.pop()
		composite := ip.pop()
		switch c := composite.(type) {
		case Array:
			for _, v := range c {
				ip.push(v)
				if err := ip.runProc(proc); err != nil {
					return err
				}
			}
		case Dict:
			for k, v := range c {
				ip.push(k)
				ip.push(v)
				if err := ip.runProc(proc); err != nil {
					return err
				}
			}
		}
	case "definefont":
		font := ip.pop()
		key := ip.pop()
		if d, ok := font.(Dict); ok {
			kn, ok2 := key.(Name)
			if !ok2 {
				kn = "font"
			}
			if ip.fonts == nil {
				ip.fonts = make(map[Name]Dict)
			}
			ip.fonts[kn] = d
		}
		ip.push(font)
	case "true":
		ip.push(Boolean(true))
	case "false":
		ip.push(Boolean(false))
	case "eq":
		b := ip.pop()
		a := ip.pop()
		ip.push(Boolean(equalValues(a, b)))
	case "ne":
		b := ip.pop()
		a := ip.pop()
		ip.push(Boolean(!equalValues(a, b)))
	case "and":
		b, _ := ip.pop().(Boolean)
		a, _ := ip.pop().(Boolean)
		ip.push(Boolean(a && b))
	case "or":
		b, _ := ip.pop().(Boolean)
		a, _ := ip.pop().(Boolean)
		ip.push(Boolean(a || b))
	case "not":
		a, _ := ip.pop().(Boolean)
		ip.push(Boolean(!a))
	case "eexec":
		return ip.spliceEexec()
	default:
		ip.push(name)
	}
	return nil
}

// spliceEexec decrypts the remainder of the input following the eexec
// keyword and rewires the lexer to continue scanning the plaintext. The
// encrypted block is almost always hex-encoded ASCII, either because the
// font shipped as PFA or because DecodePFB re-hex-encoded a PFB binary
// segment; a raw-binary fallback covers the rare font that ships the
// eexec block as raw bytes directly.
func (ip *interp) spliceEexec() error {
	l := ip.lex
	l.skipSpace()
	rest := l.data[l.pos:]

	cipher := rest
	if looksHexEncoded(rest) {
		cipher = decodeHexLenient(rest)
	}

	plain := decryptEexec(cipher)
	ip.lex = newLexer(plain)
	return nil
}

func looksHexEncoded(data []byte) bool {
	seen := 0
	for _, c := range data {
		if isSpace(c) {
			continue
		}
		if !isHexDigit(c) {
			return false
		}
		seen++
		if seen >= 4 {
			return true
		}
	}
	return seen > 0
}

func decodeHexLenient(data []byte) []byte {
	var nibbles []byte
	for _, c := range data {
		if isSpace(c) {
			continue
		}
		if !isHexDigit(c) {
			break
		}
		nibbles = append(nibbles, hexVal(c))
	}
	out := make([]byte, len(nibbles)/2)
	for i := range out {
		out[i] = nibbles[2*i]<<4 | nibbles[2*i+1]
	}
	return out
}

// parseType1 scans a full Type 1 font program and returns the fonts it
// registered via definefont, keyed by the name the program used.
func parseType1(data []byte) (map[Name]Dict, error) {
	ip := newInterp(newLexer(data))
	if err := ip.run(); err != nil {
		return nil, err
	}
	if len(ip.fonts) == 0 {
		return nil, invalidSince("no font found in type 1 program")
	}
	return ip.fonts, nil
}
