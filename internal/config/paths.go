package config

const (
	PathEnable      = "general/enable"
	PathAIEngine    = "general/ai_engine"
	PathStoreLocale = "general/locale/code"

	PathDeeplAPIDomain            = "deepl/api_domain"
	PathDeeplAPIKey               = "deepl/api_key"
	PathDeeplDefaultSourceLang    = "deepl/default_source_lang"
	PathDeeplDefaultTargetLang    = "deepl/default_target_lang"
	PathDeeplModelType            = "deepl/model_type"
	PathDeeplSplitSentences       = "deepl/split_sentences"
	PathDeeplPreserveFormatting   = "deepl/preserve_formatting"
	PathDeeplFormality            = "deepl/formality"
	PathDeeplTagHandling          = "deepl/tag_handling"
	PathDeeplOutlineDetection     = "deepl/outline_detection"
	PathDeeplNonSplittingTags     = "deepl/non_splitting_tags"
	PathDeeplSplittingTags        = "deepl/splitting_tags"
	PathDeeplIgnoreTags           = "deepl/ignore_tags"
	PathDeeplShowBilledCharacters = "deepl/show_billed_characters"
	PathDeeplRequestTimeout       = "deepl/request_timeout"
	PathDeeplLocaleTargets        = "deepl/locale_targets"

	PathChatGPTAPIKey            = "chatgpt/api_key"
	PathChatGPTEndpoint          = "chatgpt/endpoint"
	PathChatGPTModel             = "chatgpt/model"
	PathChatGPTTemperature       = "chatgpt/temperature"
	PathChatGPTDefaultSourceLang = "chatgpt/default_source_lang"
	PathChatGPTDefaultTargetLang = "chatgpt/default_target_lang"
	PathChatGPTRequestTimeout    = "chatgpt/request_timeout"
	PathChatGPTCleanOutput       = "chatgpt/clean_output"
	PathChatGPTProtectMarkup     = "chatgpt/protect_markup"
	PathChatGPTDetectSourceLang  = "chatgpt/detect_source_lang"
	PathChatGPTVerifyTargetLang  = "chatgpt/verify_target_lang"

	PathGoogleAPIKey            = "google/api_key"
	PathGoogleCredentials       = "google/credentials"
	PathGoogleEndpoint          = "google/endpoint"
	PathGoogleDefaultSourceLang = "google/default_source_lang"
	PathGoogleDefaultTargetLang = "google/default_target_lang"
	PathGoogleFormat            = "google/format"
	PathGoogleRequestTimeout    = "google/request_timeout"
)

const (
	DefaultChatGPTEndpoint    = "https://api.openai.com/v1/chat/completions"
	DefaultChatGPTModel       = "gpt-3.5-turbo"
	DefaultChatGPTTemperature = 0.7
	DefaultLocaleTargets      = "en=EN-US,pt=PT-BR"
)

// secretPaths are stored as ciphertext and only readable through Provider.Secret.
var secretPaths = map[string]bool{
	PathDeeplAPIKey:   true,
	PathChatGPTAPIKey: true,
	PathGoogleAPIKey:  true,
}

// IsSecret reports whether values stored under path are encrypted.
func IsSecret(path string) bool {
	return secretPaths[path]
}
