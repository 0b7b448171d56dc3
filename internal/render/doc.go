// Package render draws a grid as text and reads such drawings back.
//
// A rendering starts with a three-line x ruler (hundreds, tens and ones
// digits of each column) and a marker line with '+' over the spring column.
// Each grid row follows, prefixed by its y coordinate right-aligned in four
// characters and a space:
//
//	     44444455555555
//	     99999900000000
//	     45678901234567
//	           +
//	   1       ~     #
//	   2  #  #~~~~   #
//
// '#' is clay, '~' water and ' ' sand. With ShowFlow, water that did not
// settle is drawn as '|'.
package render
