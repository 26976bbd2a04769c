// Package pages renders the full HTML pages of the site. The markup lives in
// .templ files; run `templ generate` after editing them.
package pages

import twmerge "github.com/Oudwins/tailwind-merge-go"

const buttonClass = "rounded-md bg-gray-900 px-4 py-2 text-sm font-medium text-white hover:bg-gray-700"

// exampleClass turns the primary button into a small secondary chip.
var exampleClass = twmerge.Merge(buttonClass, "bg-gray-100 text-gray-900 hover:bg-gray-200 px-2 py-1 text-xs")
