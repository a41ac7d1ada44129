// Package expr evaluates byte expressions against a decoded response buffer.
//
// An expression combines numbers, the variable V and references into the
// buffer with the binary operators + - * / & | ^ << >> and parentheses:
//
//	B3          unsigned byte at index 3
//	S3          byte at index 3 read as a signed int8
//	B3:7        bit 7 of byte 3 (0 is the least significant bit)
//	[B2:B3]     bytes 2..3 as one big-endian unsigned integer
//	[S2:S3]     the same range sign-extended from 16 bits
//
// Precedence from lowest to highest is | ^, &, << >>, + -, * /, all left
// associative. Bitwise operators work on 32-bit two's complement integers
// after dropping any fractional part of their operands.
package expr
