package viewtypes

// ============================================================================
// SHARED CSS CLASS CONSTANTS
// Class strings used across template files. All of them are defined in
// static/dist/main.css.
// ============================================================================

// SectionLabel is the standard label style for slider labels and panel headings.
var SectionLabel = "label mono upper"

// GhostButtonSm is a small ghost-style button (outlined, no fill).
var GhostButtonSm = "btn btn-ghost btn-sm mono upper"

// InfoBoxClass is the standard info/detail panel container.
var InfoBoxClass = "panel"

// TabTrigger is a tab button. The active tab gets .active through data-class:active.
var TabTrigger = "tab mono upper"

// RangeInput is the slider style.
var RangeInput = "range"

// DumpClass styles the settings dump <pre>.
var DumpClass = "dump mono"
