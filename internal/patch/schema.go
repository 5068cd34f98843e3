package patch

// patchListSchema is the strict schema every incoming patch payload must
// satisfy before unmarshalling. The type enum is the closed set of variants;
// per-variant requirements are expressed as conditional branches.
const patchListSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "additionalProperties": false,
    "required": ["type", "week", "day"],
    "properties": {
      "type": {
        "type": "string",
        "enum": ["replace_exercise", "add_exercise", "remove_exercise", "change_prescription"]
      },
      "week": { "type": "integer", "minimum": 1 },
      "day": { "type": "string", "minLength": 1 },
      "position": { "type": "integer", "minimum": 0 },
      "exerciseId": { "type": "string", "pattern": "^[0-9a-fA-F]{24}$" },
      "exerciseName": { "type": "string" },
      "bodyPart": { "type": "string" },
      "sets": {
        "type": "object",
        "additionalProperties": false,
        "required": ["count"],
        "properties": {
          "count": { "type": "integer", "minimum": 1 },
          "reps": { "type": "integer", "minimum": 1 },
          "repsRange": {
            "type": "object",
            "additionalProperties": false,
            "required": ["min", "max"],
            "properties": {
              "min": { "type": "integer", "minimum": 1 },
              "max": { "type": "integer", "minimum": 1 }
            }
          },
          "weightKg": { "type": "number", "minimum": 0 },
          "restSeconds": { "type": "integer", "minimum": 0 },
          "rpe": { "type": "number", "minimum": 1, "maximum": 10 },
          "notes": { "type": "string" }
        }
      }
    },
    "allOf": [
      {
        "if": { "properties": { "type": { "const": "replace_exercise" } } },
        "then": { "required": ["position", "exerciseId", "exerciseName"] }
      },
      {
        "if": { "properties": { "type": { "const": "add_exercise" } } },
        "then": { "required": ["exerciseId", "exerciseName"] }
      },
      {
        "if": { "properties": { "type": { "const": "remove_exercise" } } },
        "then": { "required": ["position"] }
      },
      {
        "if": { "properties": { "type": { "const": "change_prescription" } } },
        "then": { "required": ["position", "sets"] }
      }
    ]
  }
}`
