package searcher

// Rollout outcomes, relative to the win symbol of the search

const Win = 1.0   // The win symbol completed a line
const Loss = -Win // The other symbol completed a line
const Draw = 0.0  // The board filled up without a line
