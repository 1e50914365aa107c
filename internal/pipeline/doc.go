// Package pipeline implements the prose-to-HTML rewriting pipeline.
//
// Rendering is a fold over a fixed, ordered list of stages. Each stage is a
// pure text-to-text transform tagged with a predicate that decides whether it
// runs for the active Mode:
//
//  1. whitespace      always     normalize line endings and blank lines
//  2. html            lite       escape &, <, >, " and '
//  3. headers         full       title (===), underline (---) and hash forms
//  4. links           full       "label":http://url and ":http://url
//  5. links-nofollow  lite       same, with rel='nofollow'
//  6. lists           always     runs of "- " or "1. " lines
//  7. glyphs          always     comments, metadata, rules, dashes, quotes
//  8. paragraphs      always     wrap blank-line-delimited blocks in <p>
//  9. tags            always     *strong* _em_ "q" %code% -del-
//  10. backslashes    always     \\ becomes a literal backslash, \ is dropped
//
// The order is load-bearing. Whitespace normalization runs first because
// every later pattern assumes "\n" line endings and at most one blank line
// between blocks. Escaping runs before any stage that synthesizes tags, and
// backslash resolution runs last so that escapes survive every earlier stage.
//
// The rule tables are built once at package initialization and never
// mutated, so a single Pipeline may be shared across goroutines.
package pipeline
