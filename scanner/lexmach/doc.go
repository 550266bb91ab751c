/*
Package lexmach provides a DFA-based scanner for the C-like language of package
scanner, generated with the lexmachine scanner generator.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The DFA is compiled once per process, on first use. Clients call NewCLexer to
get the shared adapter and create one scanner per input:

	LM, err := lexmach.NewCLexer()
	if err != nil {
		// DFA did not compile
	}
	scan := LM.Scanner("main.c", input)
	for {
		tok, err := scan.NextToken()
		if err == io.EOF {
			break
		} else if err != nil {
			// malformed input, err is a *scanner.MalformedError
		}
		…
	}

The scanner recognizes the same alphabet as the hand-rolled lexer of package
scanner and produces tokens of type scanner.Token, so both backends are
interchangeable.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
