// Package fixstr provides fixed-capacity strings and a fast text formatter
// for building log and diagnostic lines without heap allocation.
//
// # Fixed strings
//
// [String] stores up to N bytes inline, followed by a NUL terminator. The
// capacity is part of the type; the predefined sizes are [Short] (68),
// [Medium] (252), [Long] (1020), [Page] (4092), [DoublePage] (8188) and
// [Large] (65532). A String never grows: appends that do not fit are
// truncated silently and Resize beyond the capacity is ignored.
//
//	var s fixstr.Short
//	s.AssignString("hello")
//	s.AppendByte('!')
//
// Compare Len with Cap to detect truncation. [String.At] is the only
// accessor that reports an error ([ErrOutOfRange]).
//
// # Digit codec
//
// [PutUint32], [PutInt64], [PutFloat] and friends write decimal digits into
// a caller-supplied buffer two at a time from a digit-pair table. The
// Max*Len constants bound the output. [PutUint64Width] and
// [PutInt64Width] zero-pad to a width; [ParseUint64] and [ParseInt64]
// read the digits back.
//
// # Texter
//
// [Texter] owns a [Sink], either a fixed string or a growable [Buffer],
// and appends values to it:
//
//	var t fixstr.MediumTexter
//	t.Print("It's", byte(' '), fixstr.Zero[int]{Width: 2, Value: 6}, byte(':'),
//		fixstr.Zero[int]{Width: 2, Value: 0}, "pm")
//	// It's 06:00pm
//	t.Clear()
//	t.Print("Radius is ", fixstr.Fixed[float64]{Precision: 2, Value: 189.887})
//	// Radius is 189.89
//	t.Clear()
//	t.Str("Addition").Format("x", -1, "y", -2, "r", -3)
//	// Addition { x:'-1' y:'-2' r:'-3' }
//
// Numbers are written by reserving the longest possible form in the target,
// writing the digits in place and giving back the unused tail. When the
// reservation does not fit a fixed target the number is skipped. Use
// [Texter.Filled] to detect a saturated target.
//
// # Printing
//
// [Print] and [Fprint] format a line of up to a [Long] plus its newline
// with a pooled texter and write it out. They are safe for concurrent use; String, Buffer and Texter values
// are not.
//
// # Patterns and splitting
//
// [Matched] implements glob matching with '*', '?' and a leading '!' for
// negation. [Split] drops empty fragments, [SplitStrictly] keeps them.
package fixstr
