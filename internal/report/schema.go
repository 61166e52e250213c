package report

// Schema is the JSON Schema (Draft 2020-12) for the genoreport JSON
// output. It documents the structure written by WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/genoreport/feature-report.schema.json",
  "title": "Genoreport Feature Report",
  "description": "Output schema for genoreport --format=json",
  "type": "object",
  "required": ["version", "rows", "summary", "warnings"],
  "properties": {
    "version": {
      "type": "string",
      "description": "Report layout version (semver)"
    },
    "rows": {
      "type": "array",
      "items": { "$ref": "#/$defs/Row" }
    },
    "summary": {
      "type": "array",
      "minItems": 4,
      "maxItems": 4,
      "items": { "$ref": "#/$defs/CategoryCount" }
    },
    "warnings": {
      "type": "array",
      "items": { "type": "string" },
      "description": "Per-gene info parsing failures"
    }
  },
  "$defs": {
    "Row": {
      "type": "object",
      "required": ["type", "name", "annotator", "alignment", "function"],
      "properties": {
        "type": {
          "type": "string",
          "enum": ["CDS", "tRNA", "rRNA"]
        },
        "name": {
          "type": "string",
          "description": "Gene name, or product text when the gene is absent"
        },
        "annotator": { "type": "string" },
        "alignment": {
          "type": "string",
          "description": "psl score/coverage/match string, empty when unknown"
        },
        "function": {
          "type": "string",
          "description": "Product text or placeholder"
        }
      }
    },
    "CategoryCount": {
      "type": "object",
      "required": ["type", "count"],
      "properties": {
        "type": {
          "type": "string",
          "enum": ["gene", "CDS", "rRNA", "tRNA"]
        },
        "count": {
          "type": "integer",
          "minimum": 0
        }
      }
    }
  }
}`
