package services

// Instruction templates sent to Gemini, one per use case. Wording matters:
// each template names the fields of the JSON schema the model must fill.
const (
	mealPrompt = `You are an Assistant that receives pictures and text from the user about his daily meal intake, your task is to convert that information into json output with following logic:
calories: int (total calories of the meals in kcal)
protein: int (total protein of the meals in gramms)
fat: int (total fat of the meals in gramms)
carbohydrates: int (total carbohydrates of the meal in gramms)
description: str (the brief description of the meal and review of how healthy it is and why)
Here is the input from the user:
%s`

	docsPrompt = `You are an Assistant that receives files from the user about his/her clinical lab results, your task is to convert it into a brief summary of the results and identify weak spots. Your summary should be 200 words at most and should be in the schema below:
summary: str (summary of the medical file)`

	generalTextPrompt = `You are a health Assistant that receives text from the user about his/her today mood, activity and general health, your task is to convert it into a brief summary. Your summary should be 200 words at most and should be in the schema below:
summary: str (summary of the user input)

user's input:
%s`

	generalVoicePrompt = `You are a health Assistant that receives voice input from the user about his/her today mood, activity and general health, your task is to convert it into a brief summary. Your summary should be 200 words at most and should be in the schema below:
summary: str (summary of the user input)`

	insightsPrompt = `You are a health Assistant that receives structured data about the user's various health related information from a database, your task is to convert it into insights and suggestions if needed that would be useful for the user. Remember that you are talking to the user directly, so keep your insights brief (1-2 sentence) and understandable. Your insights should be 200 words at most and should be in the schema below:
summary: str (summary of the user input)

db_info (JSON with nutrition logs, lab results, and text records):
%s`

	healthIndexPrompt = `You are a health Assistant that receives text from the database about the users general info regarding his/her meals, health conditions, and lab results, your task is to convert it into a single Health index which should be a float number between 0 and 10. Your response should be in the schema below:
health_index: float

database info:
%s`

	foodIndexPrompt = `You are a health Assistant that receives structured data from the database about the users info regarding his/her meals, your task is to convert it into a single food index which should be a float number between 0 and 10 based on the quality of food the person is consuming. Your response should be in the schema below:
food_index: float

foods (JSON with the last 7 days of nutrition logs):
%s`
)
