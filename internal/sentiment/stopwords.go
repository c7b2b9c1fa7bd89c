package sentiment

// stopwords キーワードから除外する語
var stopwords = []string{
	"the", "and", "for", "are", "but", "with", "was", "were", "this", "that", "these", "those",
	"you", "your", "our", "they", "them", "their", "there", "here", "have", "has", "had",
	"from", "its", "been", "being", "all", "any", "some", "very", "really", "just",
	"what", "when", "where", "which", "who", "why", "how", "also", "too", "than", "then",
	"out", "into", "over", "about", "again", "more", "most", "much", "can", "could", "would",
	"should", "will", "did", "does", "doing", "she", "her", "him", "his",
	"one", "get", "got", "place", "came", "come", "went", "back", "even", "only", "because",
	"extremely", "super", "incredibly", "definitely", "not", "never", "nothing",
}
