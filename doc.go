/*
Package gorem is a small compiler front-end toolkit.

It consists of a tokenizer for a C-like source language and a grammar
analysis engine computing FIRST and FOLLOW sets for context-free grammars
entered as text. Package structure is as follows:

■ scanner: Package scanner defines the token alphabet of the C-like language
and a hand-rolled byte lexer for it. Sub-package lexmach provides a second
backend, generated by lexmachine.

■ grammar: Package grammar implements symbols, productions and grammars,
together with the FIRST and FOLLOW fixed-point computations.

■ report: Package report formats FIRST and FOLLOW sets for output.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gorem
