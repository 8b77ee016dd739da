package profile

// ProfileGetInput for GET /profile (no body needed)
type ProfileGetInput struct{}

// ProfileCompletenessInput for GET /profile/completeness (no body needed)
type ProfileCompletenessInput struct{}

// ProfileSaveInput for PUT /profile
type ProfileSaveInput struct {
	Body ProfileSaveBody
}

// ProfileSaveBody is one profile edit. Omitted fields keep their stored value.
type ProfileSaveBody struct {
	PublicData    PublicDataInput  `json:"publicData,omitempty"    doc:"Fields visible to every viewer"`
	PrivateData   PrivateDataInput `json:"privateData,omitempty"   doc:"Fields visible to authorized viewers"`
	MainImage     *ImageInput      `json:"mainImage,omitempty"     doc:"Replaces the profile photo"`
	GalleryImages []ImageInput     `json:"galleryImages,omitempty" doc:"Full ordered gallery; an empty list clears it" maxItems:"12"`
}

// PublicDataInput carries public profile fields.
type PublicDataInput struct {
	Name          *string `json:"name,omitempty"          maxLength:"100"                                     doc:"Full name"             example:"Asha Patil"`
	Gender        *string `json:"gender,omitempty"        enum:"male,female,other"                            doc:"Gender"                example:"female"`
	BirthDate     *string `json:"birthDate,omitempty"     format:"date"                                       doc:"Birth date"            example:"1995-04-12"`
	Religion      *string `json:"religion,omitempty"      maxLength:"100"                                     doc:"Religion"              example:"Hindu"`
	MotherTongue  *string `json:"motherTongue,omitempty"  maxLength:"100"                                     doc:"Mother tongue"         example:"Marathi"`
	MaritalStatus *string `json:"maritalStatus,omitempty" maxLength:"50"                                      doc:"Marital status"        example:"neverMarried"`
	Education     *string `json:"education,omitempty"     maxLength:"200"                                     doc:"Highest education"     example:"B.E. Computer Engineering"`
	Occupation    *string `json:"occupation,omitempty"    maxLength:"200"                                     doc:"Occupation"            example:"Software Engineer"`
	Location      *string `json:"location,omitempty"      maxLength:"200"                                     doc:"City or region"        example:"Pune"`
	About         *string `json:"about,omitempty"         maxLength:"2000"                                    doc:"Self description"      example:"Enjoys trekking in the Sahyadris."`
}

// PrivateDataInput carries private profile fields.
type PrivateDataInput struct {
	Email              *string `json:"email,omitempty"              doc:"Contact email"                  example:"asha@example.com"`
	Phone              *string `json:"phone,omitempty"              doc:"Phone, 10 to 15 digits"          example:"+919812345678"`
	Height             *string `json:"height,omitempty"             doc:"Height in centimeters"           example:"162"`
	Caste              *string `json:"caste,omitempty"              maxLength:"100"  doc:"Caste"          example:"Maratha"`
	Income             *string `json:"income,omitempty"             maxLength:"100"  doc:"Annual income"  example:"12 LPA"`
	Hobbies            *string `json:"hobbies,omitempty"            maxLength:"2000" doc:"Hobbies"        example:"Reading, trekking"`
	FamilyDetails      *string `json:"familyDetails,omitempty"      maxLength:"2000" doc:"Family details" example:"Parents and one younger brother"`
	PartnerPreferences *string `json:"partnerPreferences,omitempty" maxLength:"2000" doc:"Partner preferences" example:"Non-smoker, based in Maharashtra"`
}

// ImageInput is either new image bytes or the URL of an already uploaded image.
type ImageInput struct {
	Data        []byte `json:"data,omitempty"        doc:"Image bytes (base64 in JSON, byte string in CBOR)"`
	ContentType string `json:"contentType,omitempty" doc:"MIME type of data; sniffed when omitted" example:"image/jpeg"`
	URL         string `json:"url,omitempty"         doc:"Previously uploaded image URL" example:"https://storage.example.com/user-123/gallery_images/user-123_gallery_images_1718000000000"`
}
