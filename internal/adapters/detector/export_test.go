package detector

// Detect exports detect for testing without a terminal.
var Detect = detect
