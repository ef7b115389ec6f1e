package value

// Boolean is a Knight true/false value.
type Boolean bool

func (b Boolean) Run() (Value, error) { return b, nil }

func (b Boolean) TypeName() string { return "boolean" }

func (b Boolean) ToInteger() (Integer, error) {
	if b {
		return 1, nil
	}
	return 0, nil
}

func (b Boolean) ToBoolean() (Boolean, error) { return b, nil }

func (b Boolean) ToString() (String, error) {
	if b {
		return "true", nil
	}
	return "false", nil
}

func (b Boolean) ToList() (List, error) {
	if b {
		return List{b}, nil
	}
	return List{}, nil
}

func (b Boolean) Dump() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Boolean) Equals(other Value) bool {
	o, ok := other.(Boolean)
	return ok && o == b
}
