/*
Package mathml renders ast expression trees as presentation MathML.

Leaves map to mn, mi, mo and mtext; groupings keep their fences as mo
elements; scripts become msub/msup/msubsup, or munder/mover/munderover
for big operators, limits and braces. Operand groupings of prefix forms
and scripts lose their fences, so sqrt(x) renders as <msqrt><mi>x</mi>
</msqrt>. Matrix-shaped groupings render as an mtable whose columnlines
follow the lone "|" cells of each row.

	r := mathml.New(mathml.Options{Display: mathml.DisplayBlock, Indent: "  "})
	fmt.Println(r.Render(parser.Parse("x = (-b +- sqrt(b^2-4ac))/(2a)")))
*/
package mathml
